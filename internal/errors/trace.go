// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const traceDepth = 8 // maximum number of stack frames to record per error

// trace holds a snapshot of program counters.
type trace []uintptr

// newTrace captures a stack trace. skip is the number of frames to skip;
// skip=0 records the newTrace call itself as the innermost frame.
func newTrace(skip int) trace {
	pc := make([]uintptr, traceDepth+1)
	return trace(pc[:runtime.Callers(skip+2, pc)])
}

// String formats the trace as human-friendly text, one "at" line per frame.
func (t trace) String() string {
	var lines []string
	// runtime.CallersFrames is needed to interpret runtime.Callers results
	// correctly; see https://github.com/golang/go/issues/19426.
	cf := runtime.CallersFrames(t)
	for {
		f, more := cf.Next()
		lines = append(lines, fmt.Sprintf("\tat %s (%s:%d)", f.Function, filepath.Base(f.File), f.Line))
		if !more {
			break
		}
		if len(lines) >= traceDepth {
			lines = append(lines, "\t...")
			break
		}
	}
	return strings.Join(lines, "\n")
}
