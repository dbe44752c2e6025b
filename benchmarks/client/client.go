package client

// Client is a sequence implementation under benchmark.
type Client[V any] interface {
	Init(capacity int)
	Insert(index int, value V)
	Remove(index int) V
	Get(index int) V
	Len() int
	// Moves returns the number of element relocations performed so far.
	Moves() uint64
	Name() string
	Close()
}
