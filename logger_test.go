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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkLogOutput(t *testing.T, got, wantRegexp string) {
	t.Helper()
	got = clean(got)
	wantRegexp = "^" + wantRegexp + "$"
	matched, err := regexp.MatchString(wantRegexp, got)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("\ngot  %s\nwant %s", got, wantRegexp)
	}
}

// clean prepares log output for comparison.
func clean(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return strings.ReplaceAll(s, "\n", "~")
}

// textTimeRE is a regexp to match log timestamps for Text handler.
// This is RFC3339Nano with the fixed 3 digit sub-second precision.
const textTimeRE = `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}(Z|[+-]\d{2}:\d{2})`

// TestDefaultLogger swaps the global slog logger, so it must not run in parallel.
func TestDefaultLogger(t *testing.T) {
	d := slog.Default()

	var b bytes.Buffer
	def := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))

	slog.SetDefault(def)
	t.Cleanup(func() {
		slog.SetDefault(d)
	})

	check := func(want string) {
		t.Helper()
		if want != "" {
			want = "time=" + textTimeRE + " " + want
		}
		checkLogOutput(t, b.String(), want)
		b.Reset()
	}

	l := Must[int](&Options{
		InitialCapacity: 1,
		Logger:          NewDefaultLogger(),
	})
	l.Add(1)
	check("")
	l.Add(2)
	check("level=DEBUG msg=\"seqlist: buffer reallocated\" old_capacity=1 new_capacity=2 start=0")

	l = Must[int](&Options{
		InitialCapacity: 4,
		Logger:          NewDefaultLogger(),
	})
	for i := 0; i < 4; i++ {
		l.Add(i)
	}
	_, err := l.Remove(0)
	require.NoError(t, err)
	l.Add(4)
	check("level=DEBUG msg=\"seqlist: elements recentered\" old_start=1 new_start=0 size=4")
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	nl := &NoopLogger{}
	require.NotPanics(t, func() {
		nl.Debug(context.Background(), "lololoo", "key", 1)
	})
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (rl *recordingLogger) Debug(ctx context.Context, msg string, args ...any) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.messages = append(rl.messages, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestList_Logger(t *testing.T) {
	t.Parallel()

	rl := &recordingLogger{}
	l := Must[string](&Options{
		InitialCapacity: 2,
		Logger:          rl,
	})
	l.Add("a")
	l.Add("b")
	require.Empty(t, rl.messages)

	require.NoError(t, l.Insert(0, "c"))
	require.Len(t, rl.messages, 1)
	require.Contains(t, rl.messages[0], "seqlist: buffer reallocated")
}
