// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package stats contains the statistics recorders used by seqlist.List.
package stats

// InsertPath identifies the storage strategy a list used to place an inserted element.
type InsertPath uint8

const (
	// InsertEmpty means the element was written into an empty list without moving anything.
	InsertEmpty InsertPath = iota
	// InsertFrontSlack means the prefix was moved one slot toward the free cells before the start.
	InsertFrontSlack
	// InsertFrontShift means there was no room before the start, so the suffix was moved toward the tail.
	InsertFrontShift
	// InsertBackSlack means the suffix was moved one slot toward the free cells after the end.
	InsertBackSlack
	// InsertRecenter means the tail was exhausted and the whole range was moved toward the head.
	InsertRecenter
	// InsertGrow means the buffer was full and has been reallocated with double capacity.
	InsertGrow
)

func (p InsertPath) String() string {
	switch p {
	case InsertEmpty:
		return "empty"
	case InsertFrontSlack:
		return "front_slack"
	case InsertFrontShift:
		return "front_shift"
	case InsertBackSlack:
		return "back_slack"
	case InsertRecenter:
		return "recenter"
	case InsertGrow:
		return "grow"
	default:
		return "unknown"
	}
}

// RemovePath identifies which side of the list was moved to close the gap left by a removed element.
type RemovePath uint8

const (
	// RemoveFront means the prefix was moved toward the tail and the start advanced.
	RemoveFront RemovePath = iota
	// RemoveBack means the suffix was moved toward the head.
	RemoveBack
)

func (p RemovePath) String() string {
	switch p {
	case RemoveFront:
		return "front"
	case RemoveBack:
		return "back"
	default:
		return "unknown"
	}
}

// Recorder accumulates statistics about the storage work done by a seqlist.List.
//
// The moves argument is the number of elements the list relocated inside or between buffers
// to complete the operation.
type Recorder interface {
	// RecordInsert records a successful insertion.
	RecordInsert(path InsertPath, moves int)
	// RecordRemove records a successful removal.
	RecordRemove(path RemovePath, moves int)
	// RecordGrowth records the replacement of the backing buffer.
	RecordGrowth(oldCapacity, newCapacity int)
}

// NoopRecorder is a Recorder that discards everything.
type NoopRecorder struct{}

func (np *NoopRecorder) RecordInsert(path InsertPath, moves int)   {}
func (np *NoopRecorder) RecordRemove(path RemovePath, moves int)   {}
func (np *NoopRecorder) RecordGrowth(oldCapacity, newCapacity int) {}
