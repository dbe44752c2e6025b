package client

import (
	"slices"
)

// Slice is the plain append-and-shift list most Go code uses.
type Slice[V any] struct {
	client []V
	moves  uint64
}

func (c *Slice[V]) Init(capacity int) {
	c.client = make([]V, 0, capacity)
	c.moves = 0
}

func (c *Slice[V]) Insert(index int, value V) {
	if len(c.client) == cap(c.client) {
		c.moves += uint64(len(c.client))
	}
	c.moves += uint64(len(c.client) - index)
	c.client = slices.Insert(c.client, index, value)
}

func (c *Slice[V]) Remove(index int) V {
	v := c.client[index]
	c.moves += uint64(len(c.client) - index - 1)
	c.client = slices.Delete(c.client, index, index+1)
	return v
}

func (c *Slice[V]) Get(index int) V {
	return c.client[index]
}

func (c *Slice[V]) Len() int {
	return len(c.client)
}

func (c *Slice[V]) Moves() uint64 {
	return c.moves
}

func (c *Slice[V]) Name() string {
	return "slice"
}

func (c *Slice[V]) Close() {
	c.client = nil
}
