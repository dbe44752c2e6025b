package workload

import (
	"github.com/maypok86/seqlist/benchmarks/client"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

const (
	Front  = "front"
	Back   = "back"
	Middle = "middle"
	Random = "random"
)

func IsAvailablePlacement(placement string) bool {
	switch placement {
	case Front, Back, Middle, Random:
		return true
	default:
		return false
	}
}

// Index maps an event to a position in a sequence of length n. ok is false when
// the event cannot be applied, i.e. a remove or a get on an empty sequence.
func Index(placement string, e event.MutationEvent, n int) (index int, ok bool) {
	bound := n
	if e.Op() == event.Insert {
		// inserting at n appends.
		bound = n + 1
	}
	if bound == 0 {
		return 0, false
	}

	switch placement {
	case Front:
		return 0, true
	case Back:
		return bound - 1, true
	case Middle:
		return n / 2, true
	default:
		//nolint:gosec // bound is positive
		return int(e.Key() % uint64(bound)), true
	}
}

// Workload replays mutation events against a client.
type Workload struct {
	placement string
	c         client.Client[uint64]
	skipped   uint64
	applied   uint64
}

func New(placement string, c client.Client[uint64]) *Workload {
	return &Workload{
		placement: placement,
		c:         c,
	}
}

// Prefill appends size elements.
func (w *Workload) Prefill(size int) {
	for i := 0; i < size; i++ {
		//nolint:gosec // i is non-negative
		w.c.Insert(w.c.Len(), uint64(i))
	}
}

func (w *Workload) Record(e event.MutationEvent) {
	index, ok := Index(w.placement, e, w.c.Len())
	if !ok {
		w.skipped++
		return
	}

	switch e.Op() {
	case event.Insert:
		w.c.Insert(index, e.Key())
	case event.Remove:
		w.c.Remove(index)
	case event.Get:
		w.c.Get(index)
	}
	w.applied++
}

// Applied returns the number of events that reached the client.
func (w *Workload) Applied() uint64 {
	return w.applied
}

func (w *Workload) Skipped() uint64 {
	return w.skipped
}
