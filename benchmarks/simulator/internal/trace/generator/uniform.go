package generator

import (
	"math/rand"
	"time"

	"github.com/pingcap/go-ycsb/pkg/generator"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

type Uniform struct {
	base
}

func NewUniform(imax uint64, mix Mix, limit *uint) *Uniform {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	//nolint:gosec // imax is validated by the config
	u := generator.NewUniform(0, int64(imax))

	generate := func(sender *sender[event.MutationEvent]) (stop bool) {
		//nolint:gosec // the lower bound is 0
		key := uint64(u.Next(r))
		return sender.Send(event.NewMutationEvent(mix.op(r), key))
	}

	return &Uniform{
		base: newBase(generate, limit),
	}
}
