package event

type Op uint8

const (
	Insert Op = iota
	Remove
	Get
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Get:
		return "get"
	default:
		return "unknown"
	}
}

// MutationEvent is a single list operation. The key is turned into an index
// by the workload placement.
type MutationEvent struct {
	op  Op
	key uint64
}

func NewMutationEvent(op Op, key uint64) MutationEvent {
	return MutationEvent{
		op:  op,
		key: key,
	}
}

func (me MutationEvent) Op() Op {
	return me.op
}

func (me MutationEvent) Key() uint64 {
	return me.key
}
