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
	"github.com/maypok86/seqlist/internal/xsync"
)

// Counter is a goroutine-safe Recorder implementation. A single Counter may be shared
// by many lists, each owned by a different goroutine.
type Counter struct {
	inserts        *xsync.Adder
	removes        *xsync.Adder
	moves          *xsync.Adder
	growths        *xsync.Adder
	recenters      *xsync.Adder
	frontShifts    *xsync.Adder
	allocatedCells *xsync.Adder
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{
		inserts:        xsync.NewAdder(),
		removes:        xsync.NewAdder(),
		moves:          xsync.NewAdder(),
		growths:        xsync.NewAdder(),
		recenters:      xsync.NewAdder(),
		frontShifts:    xsync.NewAdder(),
		allocatedCells: xsync.NewAdder(),
	}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		Inserts:        c.inserts.Value(),
		Removes:        c.removes.Value(),
		Moves:          c.moves.Value(),
		Growths:        c.growths.Value(),
		Recenters:      c.recenters.Value(),
		FrontShifts:    c.frontShifts.Value(),
		AllocatedCells: c.allocatedCells.Value(),
	}
}

// Reset sets all counts back to zero.
func (c *Counter) Reset() {
	c.inserts.Reset()
	c.removes.Reset()
	c.moves.Reset()
	c.growths.Reset()
	c.recenters.Reset()
	c.frontShifts.Reset()
	c.allocatedCells.Reset()
}

// RecordInsert records a successful insertion and the relocations it caused.
func (c *Counter) RecordInsert(path InsertPath, moves int) {
	c.inserts.Add(1)
	//nolint:gosec // moves is never negative
	c.moves.Add(uint64(moves))
	switch path {
	case InsertRecenter:
		c.recenters.Add(1)
	case InsertFrontShift:
		c.frontShifts.Add(1)
	}
}

// RecordRemove records a successful removal and the relocations it caused.
func (c *Counter) RecordRemove(path RemovePath, moves int) {
	c.removes.Add(1)
	//nolint:gosec // moves is never negative
	c.moves.Add(uint64(moves))
}

// RecordGrowth records the reallocation of a backing buffer.
func (c *Counter) RecordGrowth(oldCapacity, newCapacity int) {
	c.growths.Add(1)
	//nolint:gosec // capacity is always positive
	c.allocatedCells.Add(uint64(newCapacity))
}
