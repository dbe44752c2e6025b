package client

import (
	"github.com/maypok86/seqlist"
	"github.com/maypok86/seqlist/stats"
)

type Seqlist[V comparable] struct {
	client  *seqlist.List[V]
	counter *stats.Counter
}

func (c *Seqlist[V]) Init(capacity int) {
	c.counter = stats.NewCounter()
	c.client = seqlist.Must[V](&seqlist.Options{
		InitialCapacity: capacity,
		StatsRecorder:   c.counter,
	})
}

func (c *Seqlist[V]) Insert(index int, value V) {
	if err := c.client.Insert(index, value); err != nil {
		panic(err)
	}
}

func (c *Seqlist[V]) Remove(index int) V {
	v, err := c.client.Remove(index)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Seqlist[V]) Get(index int) V {
	v, err := c.client.Get(index)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Seqlist[V]) Len() int {
	return c.client.Size()
}

func (c *Seqlist[V]) Moves() uint64 {
	return c.counter.Snapshot().Moves
}

func (c *Seqlist[V]) Name() string {
	return "seqlist"
}

func (c *Seqlist[V]) Close() {
	c.client.Clear()
	c.client = nil
}
