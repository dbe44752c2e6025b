package main

import (
	"fmt"
	"strings"

	"github.com/maypok86/seqlist"
	"github.com/maypok86/seqlist/quicksort"
)

type task struct {
	name     string
	priority int
}

func main() {
	// Sort ordered values
	numbers := seqlist.Must[int](nil)
	for _, n := range []int{3, 1, 4, 1, 5, 9} {
		numbers.Add(n)
	}
	if err := quicksort.Sort[int](numbers, 0, numbers.Size()-1); err != nil {
		panic(err)
	}

	for i := 0; i < numbers.Size(); i++ {
		n, _ := numbers.Get(i)
		fmt.Print(n, " ")
	}
	fmt.Println()

	// Sort only a part of the list by a custom order
	tasks := seqlist.Must[task](nil)
	tasks.Add(task{name: "deploy", priority: 2})
	tasks.Add(task{name: "build", priority: 1})
	tasks.Add(task{name: "test", priority: 3})
	tasks.Add(task{name: "cleanup", priority: 0})

	byName := func(a, b task) int {
		return strings.Compare(a.name, b.name)
	}
	// cleanup stays last
	if err := quicksort.SortFunc[task](tasks, 0, 2, byName); err != nil {
		panic(err)
	}

	for i := 0; i < tasks.Size(); i++ {
		t, _ := tasks.Get(i)
		fmt.Println(t.name, t.priority)
	}
}
