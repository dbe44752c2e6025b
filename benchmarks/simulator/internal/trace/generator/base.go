package generator

import (
	"runtime"
	"sync"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

const (
	ZipfType    = "zipf"
	UniformType = "uniform"
	FileType    = "file"
)

type genFunc func(sender *sender[event.MutationEvent]) (stop bool)

type base struct {
	once     sync.Once
	stream   Stream[event.MutationEvent]
	generate genFunc
	limit    *uint
}

func newBase(generate genFunc, limit *uint) base {
	return base{
		stream:   newStream[event.MutationEvent](16 * runtime.GOMAXPROCS(0)),
		generate: generate,
		limit:    limit,
	}
}

func (b *base) Generate() Stream[event.MutationEvent] {
	b.once.Do(func() {
		go func() {
			sender := newSender(b.stream, b.limit)
			for {
				if stop := b.generate(sender); stop {
					b.stream.close()
					break
				}
			}
		}()
	})

	return b.stream
}
