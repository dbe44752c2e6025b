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


// Package pslog provides a plug-in seqlist.Logger wrapping slog.Logger for usage in
// a seqlist.List.
//
// This can be used like so:
//
//		list := seqlist.Must[int](&seqlist.Options{
//	         Logger: pslog.New(slog.Default()),
//		     // ...other opts
//		})
package pslog

import (
	"context"
	"log/slog"

	"github.com/maypok86/seqlist"
)

var _ seqlist.Logger = (*Logger)(nil)

// Option applies options to the logger.
type Option func(*options)

type options struct {
	level slog.Level
	attrs []slog.Attr
}

// WithLevel sets the level used for records emitted by the list. It is slog.LevelDebug by default.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithAttrs adds attributes to every record, e.g. the name of the list.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// Logger that wraps the slog.Logger.
type Logger struct {
	log   *slog.Logger
	level slog.Level
}

// New returns a new Logger.
func New(log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		panic("pslog: log is nil")
	}

	o := &options{
		level: slog.LevelDebug,
	}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.attrs) > 0 {
		args := make([]any, 0, len(o.attrs))
		for _, a := range o.attrs {
			args = append(args, a)
		}
		log = log.With(args...)
	}

	return &Logger{
		log:   log,
		level: o.level,
	}
}

// Debug is for the seqlist.Logger interface.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log.Log(ctx, l.level, msg, args...)
}
