package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClients_SameSequence(t *testing.T) {
	t.Parallel()

	clients := []Client[uint64]{
		&Seqlist[uint64]{},
		&Slice[uint64]{},
		&Deque[uint64]{},
	}
	removed := make([]uint64, 0, len(clients))
	for _, c := range clients {
		c.Init(4)
		for i := 0; i < 32; i++ {
			c.Insert((i*7)%(c.Len()+1), uint64(i))
		}
		removed = append(removed, c.Remove(3))
		require.Equal(t, 31, c.Len(), c.Name())
	}
	require.Equal(t, removed[0], removed[1])
	require.Equal(t, removed[0], removed[2])

	for i := 0; i < clients[0].Len(); i++ {
		want := clients[0].Get(i)
		for _, c := range clients[1:] {
			require.Equal(t, want, c.Get(i), "%s at %d", c.Name(), i)
		}
	}

	for _, c := range clients {
		require.NotZero(t, c.Moves(), c.Name())
		c.Close()
	}
}
