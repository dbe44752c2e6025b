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

package stats

import (
	"sync/atomic"
	"testing"
)

func runBenchCounter(b *testing.B, snapshot func(), record func(), readRatio int) {
	b.Helper()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		sink := 0
		for pb.Next() {
			sink++
			if readRatio > 0 && sink%readRatio == 0 {
				snapshot()
			} else {
				record()
			}
		}
		_ = sink
	})
}

func BenchmarkCounter(b *testing.B) {
	c := NewCounter()
	runBenchCounter(b, func() {
		_ = c.Snapshot()
	}, func() {
		c.RecordInsert(InsertBackSlack, 3)
	}, 10000)
}

func BenchmarkAtomicUint64(b *testing.B) {
	var inserts, moves atomic.Uint64
	runBenchCounter(b, func() {
		_ = inserts.Load()
		_ = moves.Load()
	}, func() {
		inserts.Add(1)
		moves.Add(3)
	}, 10000)
}
