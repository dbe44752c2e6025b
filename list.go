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

// Package seqlist provides an index-addressable, resizable sequence backed by a single buffer
// with a movable start offset.
//
// Insertions and removals move whichever side of the logical range is shorter. When one end
// of the buffer runs out of free cells, the list first tries to recenter the elements and only
// reallocates once the buffer is completely full. This keeps work near both ends cheap without
// resorting to wraparound indexing.
//
// A List is not safe for concurrent use.
package seqlist

import (
	"context"
	"fmt"

	"github.com/maypok86/seqlist/stats"
)

const notFound = -1

// List is a sequence of elements addressable by index.
//
// The logical element i is stored at buf[start+i]. Cells outside [start, start+size)
// always hold the zero value of T.
//
// The zero value is an empty list ready to use; its buffer is allocated with the default
// capacity on the first insertion.
type List[T comparable] struct {
	buf      []T
	start    int
	size     int
	recorder stats.Recorder
	logger   Logger
}

// New returns a new list with the specified options.
//
// A nil options is equivalent to the zero Options.
func New[T comparable](o *Options) (*List[T], error) {
	if o == nil {
		o = &Options{}
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	return &List[T]{
		buf:      make([]T, o.getInitialCapacity()),
		recorder: o.getStatsRecorder(),
		logger:   o.getLogger(),
	}, nil
}

// NewWithCapacity returns a new list whose first buffer holds capacity elements.
//
// It returns ErrInvalidArgument if capacity < 1.
func NewWithCapacity[T comparable](capacity int) (*List[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity should be positive, got %d", ErrInvalidArgument, capacity)
	}
	return New[T](&Options{
		InitialCapacity: capacity,
	})
}

// Must creates a configured List instance or
// panics if invalid parameters were specified.
func Must[T comparable](o *Options) *List[T] {
	l, err := New[T](o)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *List[T]) init() {
	l.buf = make([]T, defaultInitialCapacity)
	if l.recorder == nil {
		l.recorder = &stats.NoopRecorder{}
	}
	if l.logger == nil {
		l.logger = &NoopLogger{}
	}
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, newIndexError("get", index, l.size)
	}
	return l.buf[l.start+index], nil
}

// Set replaces the element at index. Only existing elements can be replaced,
// so index must be less than Size.
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= l.size {
		return newIndexError("set", index, l.size)
	}
	l.buf[l.start+index] = value
	return nil
}

// IndexOf returns the index of the first element equal to value, or -1 if there is none.
func (l *List[T]) IndexOf(value T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[l.start+i] == value {
			return i
		}
	}
	return notFound
}

// Contains reports whether value is present in the list.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// Clear removes all elements. The capacity and the start offset are kept.
func (l *List[T]) Clear() {
	clear(l.buf)
	l.size = 0
}

// Add appends value to the end of the list.
func (l *List[T]) Add(value T) {
	// index == size is always in range.
	_ = l.Insert(l.size, value)
}

// Insert places value at index, moving the elements at index and after one position up.
// index may be equal to Size, which appends.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return newIndexError("insert", index, l.size)
	}
	if l.buf == nil {
		l.init()
	}

	var (
		path  stats.InsertPath
		moves int
	)
	switch {
	case l.size == 0:
		path = l.insertEmpty(value)
	case l.size < len(l.buf):
		if index <= l.size/2 {
			if l.start > 0 {
				path, moves = l.insertFrontSlack(index, value)
			} else {
				path, moves = l.insertFrontShift(index, value)
			}
		} else {
			if l.start+l.size < len(l.buf) {
				path, moves = l.insertBackSlack(index, value)
			} else {
				path, moves = l.insertRecenter(index, value)
			}
		}
	default:
		path, moves = l.grow(index, value)
	}
	l.size++

	l.recorder.RecordInsert(path, moves)
	return nil
}

func (l *List[T]) insertEmpty(value T) stats.InsertPath {
	// draining the list from the front can leave start just past the last cell.
	if l.start >= len(l.buf) {
		l.start = len(l.buf) / 2
	}
	l.buf[l.start] = value
	return stats.InsertEmpty
}

// insertFrontSlack uses the free cell before start.
func (l *List[T]) insertFrontSlack(index int, value T) (stats.InsertPath, int) {
	copy(l.buf[l.start-1:], l.buf[l.start:l.start+index])
	l.start--
	l.buf[l.start+index] = value
	return stats.InsertFrontSlack, index
}

// insertFrontShift is the fallback for front-half insertions when start is already 0.
func (l *List[T]) insertFrontShift(index int, value T) (stats.InsertPath, int) {
	copy(l.buf[l.start+index+1:], l.buf[l.start+index:l.start+l.size])
	l.buf[l.start+index] = value
	return stats.InsertFrontShift, l.size - index
}

// insertBackSlack uses the free cell after the last element.
func (l *List[T]) insertBackSlack(index int, value T) (stats.InsertPath, int) {
	copy(l.buf[l.start+index+1:], l.buf[l.start+index:l.start+l.size])
	l.buf[l.start+index] = value
	return stats.InsertBackSlack, l.size - index
}

// insertRecenter handles a back-half insertion when the tail is exhausted but start > 0.
// It moves the whole range to start/2 so that free cells appear after the end again.
func (l *List[T]) insertRecenter(index int, value T) (stats.InsertPath, int) {
	oldStart := l.start
	newStart := oldStart / 2

	// both destinations lie below their sources, so the copies never clobber unread cells.
	copy(l.buf[newStart:], l.buf[oldStart:oldStart+index])
	copy(l.buf[newStart+index+1:], l.buf[oldStart+index:oldStart+l.size])
	l.buf[newStart+index] = value
	l.start = newStart
	clear(l.buf[newStart+l.size+1:])

	l.logger.Debug(context.Background(), "seqlist: elements recentered",
		"old_start", oldStart,
		"new_start", newStart,
		"size", l.size+1,
	)
	return stats.InsertRecenter, l.size
}

// grow replaces a full buffer with one of double capacity.
func (l *List[T]) grow(index int, value T) (stats.InsertPath, int) {
	oldCapacity := len(l.buf)
	newCapacity := 2 * oldCapacity

	newStart := l.start
	if newStart == 0 && index <= l.size/2 {
		// leave free cells before the start for further front insertions.
		newStart = (newCapacity - l.size) / 2
	}

	buf := make([]T, newCapacity)
	copy(buf[newStart:], l.buf[l.start:l.start+index])
	buf[newStart+index] = value
	copy(buf[newStart+index+1:], l.buf[l.start+index:l.start+l.size])

	l.buf = buf
	l.start = newStart

	l.recorder.RecordGrowth(oldCapacity, newCapacity)
	l.logger.Debug(context.Background(), "seqlist: buffer reallocated",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"start", newStart,
	)
	return stats.InsertGrow, l.size
}

// Remove deletes the element at index and returns it. The elements on the shorter side
// of index are moved one position toward it.
func (l *List[T]) Remove(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, newIndexError("remove", index, l.size)
	}

	var (
		zero  T
		path  stats.RemovePath
		moves int
	)
	removed := l.buf[l.start+index]
	if index <= l.size/2 {
		copy(l.buf[l.start+1:], l.buf[l.start:l.start+index])
		l.buf[l.start] = zero
		l.start++
		path, moves = stats.RemoveFront, index
	} else {
		copy(l.buf[l.start+index:], l.buf[l.start+index+1:l.start+l.size])
		l.buf[l.start+l.size-1] = zero
		path, moves = stats.RemoveBack, l.size-index-1
	}
	l.size--

	l.recorder.RecordRemove(path, moves)
	return removed, nil
}
