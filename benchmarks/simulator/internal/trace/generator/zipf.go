package generator

import (
	"math/rand"
	"time"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

type Zipf struct {
	base
}

func NewZipf(s, v float64, imax uint64, mix Mix, limit *uint) *Zipf {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	z := rand.NewZipf(r, s, v, imax)

	generate := func(sender *sender[event.MutationEvent]) (stop bool) {
		key := z.Uint64()
		return sender.Send(event.NewMutationEvent(mix.op(r), key))
	}

	return &Zipf{
		base: newBase(generate, limit),
	}
}
