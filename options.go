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

	"github.com/maypok86/seqlist/stats"
)

const (
	defaultInitialCapacity = 10
)

// Options should be passed to New to construct a List.
type Options struct {
	// InitialCapacity specifies the size of the first backing buffer. Providing a large enough estimate
	// at construction time avoids reallocations later, but setting this value unnecessarily high wastes memory.
	//
	// Zero means the default capacity of 10.
	InitialCapacity int
	// StatsRecorder accumulates statistics about shifts, recentering and reallocations
	// performed by the list.
	StatsRecorder stats.Recorder
	// Logger specifies the Logger implementation that will be used for debug output about
	// reallocations and recentering.
	//
	// Logging is disabled by default.
	Logger Logger
}

func (o *Options) getInitialCapacity() int {
	if o.InitialCapacity > 0 {
		return o.InitialCapacity
	}
	return defaultInitialCapacity
}

func (o *Options) getStatsRecorder() stats.Recorder {
	if o.StatsRecorder == nil {
		return &stats.NoopRecorder{}
	}
	return o.StatsRecorder
}

func (o *Options) getLogger() Logger {
	if o.Logger == nil {
		return &NoopLogger{}
	}
	return o.Logger
}

func (o *Options) validate() error {
	if o.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial capacity should be positive", ErrInvalidArgument)
	}
	return nil
}
