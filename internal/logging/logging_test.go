// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestWriterLoggerLevel(t *testing.T) {
	var b bytes.Buffer
	l := NewWriterLogger(LevelInfo, false, &b)
	l.Log(LevelDebug, time.Now(), "debug entry")
	l.Log(LevelInfo, time.Now(), "info entry")

	if got, want := b.String(), "info entry\n"; got != want {
		t.Errorf("WriterLogger wrote %q; want %q", got, want)
	}
}

func TestWriterLoggerTimestamp(t *testing.T) {
	var b bytes.Buffer
	l := NewWriterLogger(LevelDebug, true, &b)
	l.Log(LevelInfo, time.Date(2024, 5, 1, 12, 34, 56, 0, time.UTC), "entry")

	const want = "2024-05-01T12:34:56.000000Z entry\n"
	if got := b.String(); got != want {
		t.Errorf("WriterLogger wrote %q; want %q", got, want)
	}
}

func TestMultiLogger(t *testing.T) {
	var got1, got2 []string
	l1 := NewFuncLogger(func(level Level, ts time.Time, msg string) { got1 = append(got1, msg) })
	l2 := NewFuncLogger(func(level Level, ts time.Time, msg string) { got2 = append(got2, msg) })

	ml := NewMultiLogger(l1)
	ml.Log(LevelInfo, time.Now(), "first")
	ml.AddLogger(l2)
	ml.Log(LevelInfo, time.Now(), "second")
	ml.RemoveLogger(l1)
	ml.Log(LevelInfo, time.Now(), "third")

	if diff := cmp.Diff(got1, []string{"first", "second"}); diff != "" {
		t.Errorf("First logger got unexpected messages (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(got2, []string{"second", "third"}); diff != "" {
		t.Errorf("Second logger got unexpected messages (-got +want):\n%s", diff)
	}
}

func TestContextFuncs(t *testing.T) {
	var msgs []string
	logger := NewFuncLogger(func(level Level, ts time.Time, msg string) { msgs = append(msgs, msg) })

	ctx := context.Background()
	Info(ctx, "dropped") // no logger attached; must not panic

	ctx = AttachLogger(ctx, logger)
	Info(ctx, "running ", "kms_vblank")
	Infof(ctx, "ran %d subtests", 6)
	Debugf(ctx, "command: %s", "/bin/true")

	want := []string{"running kms_vblank", "ran 6 subtests", "command: /bin/true"}
	if diff := cmp.Diff(msgs, want); diff != "" {
		t.Errorf("Logged messages mismatch (-got +want):\n%s", diff)
	}
	for _, m := range msgs {
		if strings.Contains(m, "%") {
			t.Errorf("Message %q contains unexpanded format verb", m)
		}
	}
}

// Attaching a second logger must propagate entries to the first one too.
func TestAttachLoggerPropagates(t *testing.T) {
	var outer, inner []string
	ctx := AttachLogger(context.Background(), NewFuncLogger(func(level Level, ts time.Time, msg string) { outer = append(outer, msg) }))
	ctx = AttachLogger(ctx, NewFuncLogger(func(level Level, ts time.Time, msg string) { inner = append(inner, msg) }))

	Info(ctx, "to both")

	if diff := cmp.Diff(outer, []string{"to both"}); diff != "" {
		t.Errorf("Outer logger got unexpected messages (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(inner, []string{"to both"}); diff != "" {
		t.Errorf("Inner logger got unexpected messages (-got +want):\n%s", diff)
	}
}
