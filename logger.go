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
	"context"
	"log/slog"
)

// Logger is the interface used to get log output from seqlist.
type Logger interface {
	// Debug logs a message at the debug level with alternating key-value pairs.
	Debug(ctx context.Context, msg string, args ...any)
}

// NoopLogger is a stub implementation of Logger interface. It may be useful if you want to disable logging.
type NoopLogger struct{}

// Debug does nothing.
func (nl *NoopLogger) Debug(ctx context.Context, msg string, args ...any) {}

type defaultLogger struct {
	log *slog.Logger
}

// NewDefaultLogger returns a Logger writing through slog.Default().
func NewDefaultLogger() Logger {
	return &defaultLogger{
		log: slog.Default(),
	}
}

func (dl *defaultLogger) Debug(ctx context.Context, msg string, args ...any) {
	dl.log.DebugContext(ctx, msg, args...)
}
