package main

import (
	"errors"
	"fmt"

	"github.com/maypok86/seqlist"
)

func main() {
	// Create a list with the default capacity
	list := seqlist.Must[string](nil)

	// Phase 1: Populate the list
	// --------------------------
	list.Add("b")
	list.Add("c")
	// Insert at the front; the free cells before the first element are used
	if err := list.Insert(0, "a"); err != nil {
		panic(err)
	}
	// Insert at Size() appends
	if err := list.Insert(list.Size(), "d"); err != nil {
		panic(err)
	}

	// Phase 2: Read and update
	// ------------------------
	first, err := list.Get(0)
	if err != nil {
		panic(err)
	}
	if first != "a" {
		panic("incorrect first element")
	}
	if err := list.Set(3, "z"); err != nil {
		panic(err)
	}
	if list.IndexOf("z") != 3 || list.Contains("d") {
		panic("incorrect lookup result")
	}

	// Phase 3: Remove and handle errors
	// ---------------------------------
	removed, err := list.Remove(1)
	if err != nil {
		panic(err)
	}
	if removed != "b" || list.Size() != 3 {
		panic("incorrect removal")
	}

	// Out of range indices never modify the list
	_, err = list.Get(list.Size())
	if !errors.Is(err, seqlist.ErrIndexOutOfRange) {
		panic("expected index error")
	}
	fmt.Println(err)

	list.Clear()
	if list.Size() != 0 {
		panic("list is not empty")
	}
}
