// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sysinfo

import (
	"context"
	"strings"
	"testing"
)

func TestCollect(t *testing.T) {
	// Probes are best-effort, so only check that Collect returns without
	// error and produces a printable line.
	s := Collect(context.Background())
	if s == nil {
		t.Fatal("Collect returned nil")
	}
	if s.String() == "" {
		t.Error("String() returned an empty line")
	}
}

func TestString(t *testing.T) {
	s := &Snapshot{
		Hostname:      "volteer",
		OS:            "linux 15.5",
		KernelVersion: "6.1.0",
		CPUModel:      "Intel(R) Core(TM) i5",
		NumCPU:        4,
		MemTotal:      8 * 1024 * 1024 * 1024,
	}
	const want = "volteer, linux 15.5, kernel 6.1.0, Intel(R) Core(TM) i5 x4, 8192 MB RAM"
	if got := s.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	empty := &Snapshot{}
	if got := empty.String(); !strings.Contains(got, "unknown") {
		t.Errorf("String() on empty snapshot = %q; want mention of unknown", got)
	}
}
