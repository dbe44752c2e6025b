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


// Package quicksort sorts index-addressable sequences in place through their
// Get/Set/Size methods only, without access to their storage.
package quicksort

import (
	"cmp"
)

// Sequence is the capability required by the sort functions.
//
// *seqlist.List[T] implements Sequence.
type Sequence[T any] interface {
	Get(index int) (T, error)
	Set(index int, value T) error
	Size() int
}

// Sort sorts the elements of s in the closed range [left, right] in ascending order.
//
// Sort does not check the range. The caller must ensure 0 <= left and right < s.Size();
// otherwise the first error returned by s is returned and s may be left partially permuted.
// The sort is not stable.
func Sort[T cmp.Ordered](s Sequence[T], left, right int) error {
	return SortFunc(s, left, right, cmp.Compare[T])
}

// SortFunc sorts the elements of s in the closed range [left, right] in ascending order
// as determined by the cmp function. cmp(a, b) should return a negative number when a < b,
// a positive number when a > b and zero when a == b, and must be a strict weak ordering.
//
// The range contract is the same as for Sort.
func SortFunc[T any](s Sequence[T], left, right int, cmp func(a, b T) int) error {
	if left >= right {
		return nil
	}

	p, err := partition(s, left, right, cmp)
	if err != nil {
		return err
	}
	if err := SortFunc(s, left, p-1, cmp); err != nil {
		return err
	}
	return SortFunc(s, p+1, right, cmp)
}

// partition is the Lomuto scheme: s[right] is the pivot and it ends up at the returned index,
// with smaller elements before it and the rest after it.
func partition[T any](s Sequence[T], left, right int, cmp func(a, b T) int) (int, error) {
	pivot, err := s.Get(right)
	if err != nil {
		return 0, err
	}

	i := left
	for j := left; j < right; j++ {
		v, err := s.Get(j)
		if err != nil {
			return 0, err
		}
		if cmp(v, pivot) < 0 {
			if err := swap(s, i, j); err != nil {
				return 0, err
			}
			i++
		}
	}
	if err := swap(s, i, right); err != nil {
		return 0, err
	}
	return i, nil
}

func swap[T any](s Sequence[T], i, j int) error {
	if i == j {
		return nil
	}

	a, err := s.Get(i)
	if err != nil {
		return err
	}
	b, err := s.Get(j)
	if err != nil {
		return err
	}
	if err := s.Set(i, b); err != nil {
		return err
	}
	return s.Set(j, a)
}
