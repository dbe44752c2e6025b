package trace

import (
	"errors"
	"io"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/parser"
)

var ErrUnknownTraceFormat = errors.New("unknown trace format")

type parserContract interface {
	Parse(send func(event event.MutationEvent) bool) (bool, error)
}

func NewParser(traceType string, reader io.Reader) (parserContract, error) {
	switch traceType {
	case parser.OpsFormat:
		return parser.NewOps(reader), nil
	default:
		return nil, ErrUnknownTraceFormat
	}
}
