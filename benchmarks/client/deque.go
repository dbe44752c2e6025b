package client

import (
	"github.com/gammazero/deque"
)

// Deque is a ring buffer with wraparound indexing.
type Deque[V any] struct {
	client *deque.Deque[V]
	moves  uint64
}

// Init ignores capacity: the deque sizes its ring on its own.
func (c *Deque[V]) Init(capacity int) {
	c.client = new(deque.Deque[V])
	c.moves = 0
}

func (c *Deque[V]) Insert(index int, value V) {
	n := c.client.Len()
	if n == c.client.Cap() {
		c.moves += uint64(n)
	}
	// the deque shifts toward the nearer end.
	c.moves += uint64(min(index, n-index))
	c.client.Insert(index, value)
}

func (c *Deque[V]) Remove(index int) V {
	n := c.client.Len()
	c.moves += uint64(min(index, n-index-1))
	return c.client.Remove(index)
}

func (c *Deque[V]) Get(index int) V {
	return c.client.At(index)
}

func (c *Deque[V]) Len() int {
	return c.client.Len()
}

func (c *Deque[V]) Moves() uint64 {
	return c.moves
}

func (c *Deque[V]) Name() string {
	return "deque"
}

func (c *Deque[V]) Close() {
	c.client.Clear()
	c.client = nil
}
