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
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a list is constructed with a non-positive capacity.
	ErrInvalidArgument = errors.New("seqlist: invalid argument")
	// ErrIndexOutOfRange is returned when an index violates the bound of the operation.
	ErrIndexOutOfRange = errors.New("seqlist: index out of range")
)

// IndexError records a rejected index and the list size at the time of the call.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func newIndexError(op string, index, size int) *IndexError {
	return &IndexError{
		Op:    op,
		Index: index,
		Size:  size,
	}
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("seqlist: %s: index %d out of range with size %d", e.Op, e.Index, e.Size)
}

// Unwrap returns ErrIndexOutOfRange so that errors.Is works on *IndexError.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
