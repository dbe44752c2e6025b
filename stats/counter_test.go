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
	"sync"
	"testing"
)

func TestCounter_Basic(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	c.RecordInsert(InsertEmpty, 0)
	c.RecordInsert(InsertRecenter, 5)
	c.RecordInsert(InsertFrontShift, 3)
	c.RecordInsert(InsertGrow, 4)
	c.RecordGrowth(4, 8)
	c.RecordRemove(RemoveFront, 1)
	c.RecordRemove(RemoveBack, 2)

	expected := Stats{
		Inserts:        4,
		Removes:        2,
		Moves:          15,
		Growths:        1,
		Recenters:      1,
		FrontShifts:    1,
		AllocatedCells: 8,
	}
	if got := c.Snapshot(); got != expected {
		t.Fatalf("got = %+v, expected = %+v", got, expected)
	}

	c.Reset()
	if got := c.Snapshot(); got != (Stats{}) {
		t.Fatalf("got = %+v, expected empty stats after reset", got)
	}
}

func TestCounter_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewCounter()

	goroutines := 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			c.RecordInsert(InsertBackSlack, 2)
			c.RecordRemove(RemoveBack, 1)
			c.RecordGrowth(10, 20)
		}()
	}

	wg.Wait()

	expected := Stats{
		Inserts:        50,
		Removes:        50,
		Moves:          150,
		Growths:        50,
		AllocatedCells: 1000,
	}

	if got := c.Snapshot(); got != expected {
		t.Fatalf("got = %+v, expected = %+v", got, expected)
	}
}

func TestNoopRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder = &NoopRecorder{}
	r.RecordInsert(InsertGrow, 10)
	r.RecordRemove(RemoveFront, 10)
	r.RecordGrowth(1, 2)
}
