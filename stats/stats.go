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


package stats

import (
	"math"
)

// Stats are statistics about the storage work done by one or more seqlist.List instances.
type Stats struct {
	// Inserts is the number of successful insertions.
	Inserts uint64
	// Removes is the number of successful removals.
	Removes uint64
	// Moves is the total number of element relocations performed by insertions and removals.
	Moves uint64
	// Growths is the number of times a backing buffer was reallocated.
	Growths uint64
	// Recenters is the number of insertions that moved the whole range toward the head
	// instead of reallocating.
	Recenters uint64
	// FrontShifts is the number of front-half insertions that found no free cell before the start
	// and had to move the suffix instead.
	FrontShifts uint64
	// AllocatedCells is the total capacity of all buffers allocated by growth.
	AllocatedCells uint64
}

// Mutations returns the number of successful insertions and removals.
//
// NOTE: the values of the metrics are undefined in case of overflow.
func (s Stats) Mutations() uint64 {
	return checkedAdd(s.Inserts, s.Removes)
}

// AverageMoves returns the average number of element relocations per mutation.
func (s Stats) AverageMoves() float64 {
	mutations := s.Mutations()
	if mutations == 0 {
		return 0.0
	}
	return float64(s.Moves) / float64(mutations)
}

// GrowthRatio returns the ratio of insertions which reallocated the backing buffer.
func (s Stats) GrowthRatio() float64 {
	if s.Inserts == 0 {
		return 0.0
	}
	return float64(s.Growths) / float64(s.Inserts)
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
