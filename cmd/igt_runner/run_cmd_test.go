// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go.chromium.org/igt/internal/control"
	"go.chromium.org/igt/internal/logging"
)

// INFO entries logged to a context carrying the mirror must show up as
// RunLog control messages; DEBUG entries must not.
func TestRunLogMirror(t *testing.T) {
	var buf bytes.Buffer
	mw := control.NewMessageWriter(&buf)

	ctx := logging.AttachLogger(context.Background(), newRunLogMirror(mw))
	logging.Debug(ctx, "resolved binary path")
	logging.Info(ctx, "Running kms_demo.Basic")

	mr := control.NewMessageReader(&buf)
	var texts []string
	for mr.More() {
		msg, err := mr.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage failed: %v", err)
		}
		rl, ok := msg.(*control.RunLog)
		if !ok {
			t.Fatalf("ReadMessage returned %T; want *control.RunLog", msg)
		}
		texts = append(texts, rl.Text)
	}
	if len(texts) != 1 || texts[0] != "Running kms_demo.Basic" {
		t.Errorf("Mirrored messages = %q; want only the INFO entry", texts)
	}
}

// The mirror must not displace a logger already attached to the context.
func TestRunLogMirrorPropagates(t *testing.T) {
	var buf bytes.Buffer
	mw := control.NewMessageWriter(&buf)

	var logged []string
	ctx := logging.AttachLogger(context.Background(),
		logging.NewFuncLogger(func(level logging.Level, ts time.Time, msg string) { logged = append(logged, msg) }))
	ctx = logging.AttachLogger(ctx, newRunLogMirror(mw))

	logging.Info(ctx, "shared entry")

	if len(logged) != 1 || logged[0] != "shared entry" {
		t.Errorf("Original logger got %q; want the INFO entry", logged)
	}
	if buf.Len() == 0 {
		t.Error("No RunLog message written to the control stream")
	}
}
