// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package seqlist

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"
)

type placement func(r *rand.Rand, size int) int

var placements = map[string]placement{
	"front": func(r *rand.Rand, size int) int {
		return r.IntN(min(size, 3) + 1)
	},
	"back": func(r *rand.Rand, size int) int {
		return size - r.IntN(min(size, 3)+1)
	},
	"middle": func(r *rand.Rand, size int) int {
		return size / 2
	},
	"random": func(r *rand.Rand, size int) int {
		return r.IntN(size + 1)
	},
}

func requireSameSequence(t *testing.T, model *deque.Deque[int], l *List[int]) {
	t.Helper()

	require.Equal(t, model.Len(), l.Size())
	for i := 0; i < model.Len(); i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, model.At(i), v, "index %d", i)
	}
}

// TestList_Model replays random mutations against the list and against a ring-buffer deque
// and expects both to hold the same sequence after every step.
func TestList_Model(t *testing.T) {
	t.Parallel()

	for name, place := range placements {
		for _, capacity := range []int{1, 2, 7, 10} {
			for _, removeRatio := range []float64{0.0, 0.3, 0.5} {
				name := fmt.Sprintf("%s/capacity=%d/removes=%.1f", name, capacity, removeRatio)
				place := place
				capacity := capacity
				removeRatio := removeRatio
				t.Run(name, func(t *testing.T) {
					t.Parallel()

					r := rand.New(rand.NewPCG(uint64(capacity), uint64(removeRatio*10)))
					l, err := NewWithCapacity[int](capacity)
					require.NoError(t, err)
					var model deque.Deque[int]

					for step := 1; step <= 500; step++ {
						if l.Size() > 0 && r.Float64() < removeRatio {
							index := min(place(r, l.Size()), l.Size()-1)
							got, err := l.Remove(index)
							require.NoError(t, err)
							require.Equal(t, model.Remove(index), got)
						} else {
							index := place(r, l.Size())
							require.NoError(t, l.Insert(index, step))
							model.Insert(index, step)
						}

						if step%10 == 0 && l.Size() > 0 {
							index := r.IntN(l.Size())
							require.NoError(t, l.Set(index, -step))
							model.Set(index, -step)
						}

						checkInvariants(t, l)
						requireSameSequence(t, &model, l)
					}

					l.Clear()
					model.Clear()
					checkInvariants(t, l)
					requireSameSequence(t, &model, l)
				})
			}
		}
	}
}
