package generator

import (
	"math/rand"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

// Mix picks the operation of a generated event.
type Mix struct {
	InsertRatio float64
	RemoveRatio float64
}

func (m Mix) op(r *rand.Rand) event.Op {
	p := r.Float64()
	switch {
	case p < m.InsertRatio:
		return event.Insert
	case p < m.InsertRatio+m.RemoveRatio:
		return event.Remove
	default:
		return event.Get
	}
}
