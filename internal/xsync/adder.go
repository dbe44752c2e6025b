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


package xsync

import (
	"sync"
	"sync/atomic"

	"github.com/maypok86/seqlist/internal/xmath"
	"github.com/maypok86/seqlist/internal/xruntime"
)

var tokenPool sync.Pool

type token struct {
	idx     uint32
	padding [xruntime.CacheLineSize - 4]byte
}

type cshard struct {
	c       uint64
	padding [xruntime.CacheLineSize - 8]byte
}

// Adder is a striped counter. It is much faster than a single atomic
// in write-heavy scenarios (for example stats shared by many lists).
type Adder struct {
	shards []cshard
	mask   uint32
}

// NewAdder creates a new Adder instance.
func NewAdder() *Adder {
	nshards := xmath.RoundUpPowerOf2(xruntime.Parallelism())
	return &Adder{
		shards: make([]cshard, nshards),
		mask:   nshards - 1,
	}
}

// Add adds the delta to the counter.
func (a *Adder) Add(delta uint64) {
	t, ok := tokenPool.Get().(*token)
	if !ok {
		t = &token{}
		t.idx = xruntime.Fastrand()
	}
	for {
		shard := &a.shards[t.idx&a.mask]
		cnt := atomic.LoadUint64(&shard.c)
		if atomic.CompareAndSwapUint64(&shard.c, cnt, cnt+delta) {
			break
		}
		t.idx = xruntime.Fastrand()
	}
	tokenPool.Put(t)
}

// Value returns the current counter value.
//
// The value may not reflect concurrent Add calls that are still in flight.
func (a *Adder) Value() uint64 {
	v := uint64(0)
	for i := 0; i < len(a.shards); i++ {
		shard := &a.shards[i]
		v += atomic.LoadUint64(&shard.c)
	}
	return v
}

// Reset resets the counter to zero.
func (a *Adder) Reset() {
	for i := 0; i < len(a.shards); i++ {
		shard := &a.shards[i]
		atomic.StoreUint64(&shard.c, 0)
	}
}
