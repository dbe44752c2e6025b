package workload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maypok86/seqlist/benchmarks/client"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/event"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	insert := event.NewMutationEvent(event.Insert, 13)
	remove := event.NewMutationEvent(event.Remove, 13)

	tests := []struct {
		placement string
		e         event.MutationEvent
		n         int
		want      int
		ok        bool
	}{
		{placement: Front, e: insert, n: 5, want: 0, ok: true},
		{placement: Back, e: insert, n: 5, want: 5, ok: true},
		{placement: Back, e: remove, n: 5, want: 4, ok: true},
		{placement: Middle, e: remove, n: 5, want: 2, ok: true},
		{placement: Random, e: insert, n: 5, want: 13 % 6, ok: true},
		{placement: Random, e: remove, n: 5, want: 13 % 5, ok: true},
		{placement: Front, e: insert, n: 0, want: 0, ok: true},
		{placement: Front, e: remove, n: 0, want: 0, ok: false},
		{placement: Random, e: event.NewMutationEvent(event.Get, 1), n: 0, want: 0, ok: false},
	}

	for _, tt := range tests {
		got, ok := Index(tt.placement, tt.e, tt.n)
		require.Equal(t, tt.ok, ok, "%s %s n=%d", tt.placement, tt.e.Op(), tt.n)
		require.Equal(t, tt.want, got, "%s %s n=%d", tt.placement, tt.e.Op(), tt.n)
	}
}

func TestIsAvailablePlacement(t *testing.T) {
	t.Parallel()

	for _, p := range []string{Front, Back, Middle, Random} {
		require.True(t, IsAvailablePlacement(p))
	}
	require.False(t, IsAvailablePlacement("left"))
}

func TestWorkload_Record(t *testing.T) {
	t.Parallel()

	c := &client.Seqlist[uint64]{}
	c.Init(4)
	defer c.Close()

	w := New(Front, c)
	w.Prefill(3)
	require.Equal(t, 3, c.Len())

	w.Record(event.NewMutationEvent(event.Insert, 100))
	require.Equal(t, uint64(100), c.Get(0))
	require.Equal(t, uint64(0), c.Get(1))

	for i := 0; i < 4; i++ {
		w.Record(event.NewMutationEvent(event.Remove, 0))
	}
	require.Equal(t, 0, c.Len())

	w.Record(event.NewMutationEvent(event.Remove, 0))
	w.Record(event.NewMutationEvent(event.Get, 0))
	require.Equal(t, uint64(5), w.Applied())
	require.Equal(t, uint64(2), w.Skipped())
}
