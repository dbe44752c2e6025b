package main

import (
	"github.com/maypok86/seqlist"
	"github.com/maypok86/seqlist/stats"
)

func main() {
	// Create a new statistics counter
	counter := stats.NewCounter()

	// Initialize list with statistics recorder
	list := seqlist.Must[int](&seqlist.Options{
		InitialCapacity: 4,
		StatsRecorder:   counter, // Attach stats collector to list
	})

	// Phase 1: Fill the buffer
	// ------------------------
	for i := 0; i < 4; i++ {
		list.Add(i) // Each insertion is recorded in stats
	}

	// Phase 2: Overflow it
	// --------------------
	list.Add(4) // The buffer is full, so it is reallocated
	// start is 0, so a front insertion shifts the elements after it
	if err := list.Insert(0, -1); err != nil {
		panic(err)
	}
	if _, err := list.Remove(0); err != nil {
		panic(err)
	}

	// Phase 3: Verify statistics
	// --------------------------
	snapshot := counter.Snapshot()

	if snapshot.Inserts != 6 {
		panic("incorrect number of inserts")
	}
	if snapshot.Removes != 1 {
		panic("incorrect number of removes")
	}
	if snapshot.Growths != 1 || snapshot.AllocatedCells != 8 {
		panic("incorrect number of growths")
	}
	if snapshot.FrontShifts != 1 {
		panic("incorrect number of front shifts")
	}
}
