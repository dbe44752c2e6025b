package simulation

type Result struct {
	name       string
	size       int
	movesPerOp float64
	nsPerOp    float64
}

func NewResult(name string, size int, movesPerOp, nsPerOp float64) Result {
	return Result{
		name:       name,
		size:       size,
		movesPerOp: movesPerOp,
		nsPerOp:    nsPerOp,
	}
}

func (r Result) Name() string {
	return r.name
}

// Size is the number of elements the list held before the trace was replayed.
func (r Result) Size() int {
	return r.size
}

func (r Result) MovesPerOp() float64 {
	return r.movesPerOp
}

func (r Result) NsPerOp() float64 {
	return r.nsPerOp
}
