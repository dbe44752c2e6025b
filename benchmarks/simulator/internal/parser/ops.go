package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

// Ops parses traces with one operation per line: "i <key>", "r <key>" or "g <key>".
// Empty lines and lines starting with '#' are skipped.
type Ops struct {
	scanner *bufio.Scanner
}

func NewOps(reader io.Reader) *Ops {
	return &Ops{
		scanner: bufio.NewScanner(reader),
	}
}

func (o *Ops) Parse(send func(event event.MutationEvent) bool) (bool, error) {
	if !o.scanner.Scan() {
		if err := o.scanner.Err(); err != nil {
			return false, WrapError(err)
		}

		return true, nil
	}

	line := strings.TrimSpace(o.scanner.Text())
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return false, WrapError(ErrInvalidFormat)
	}

	var op event.Op
	switch fields[0] {
	case "i":
		op = event.Insert
	case "r":
		op = event.Remove
	case "g":
		op = event.Get
	default:
		return false, WrapError(ErrInvalidFormat)
	}

	key, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return false, WrapError(err)
	}

	if stop := send(event.NewMutationEvent(op, key)); stop {
		return true, nil
	}
	return false, nil
}
