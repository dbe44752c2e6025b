package simulator

import (
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/trace/generator"
)

type traceGenerator interface {
	Generate() generator.Stream[event.MutationEvent]
}
