// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package result classifies the textual output of IGT test binaries and
// converts classifications into harness-visible outcomes.
//
// IGT binaries report progress as human-readable lines on stdout. When a
// single subtest is selected, the binary emits a marker line of the exact
// form "Subtest <name>: <FAIL|SKIP|SUCCESS>". Classification is a plain
// substring search over the captured output, never a structured parse, and
// never looks at the exit code.
package result

import "strings"

// Status is the classification of one invocation's captured output.
type Status int

const (
	// Pass indicates the binary reported success.
	Pass Status = iota
	// Fail indicates the binary reported a failure.
	Fail
	// Skip indicates the binary declined to run the requested checks.
	Skip
	// Unknown indicates none of the recognized markers were present.
	// Unknown is reported as a failure, since an unrecognized result is
	// unsafe to treat as a pass.
	Unknown
)

// String returns a human-readable name for s.
func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseSubtest classifies the output of an invocation that selected the
// named subtest. It searches for the literal marker lines
// "Subtest <name>: FAIL", "Subtest <name>: SKIP" and
// "Subtest <name>: SUCCESS" in that priority order; the first marker found
// wins even if several are present. The search is case-sensitive.
//
// This can false-positive if a marker-like sequence is echoed elsewhere in
// the output; that risk is accepted, matching the binaries' contract.
func ParseSubtest(log, name string) Status {
	prefix := "Subtest " + name + ": "
	switch {
	case strings.Contains(log, prefix+"FAIL"):
		return Fail
	case strings.Contains(log, prefix+"SKIP"):
		return Skip
	case strings.Contains(log, prefix+"SUCCESS"):
		return Pass
	default:
		return Unknown
	}
}

// ParseRun classifies the output of a whole-binary invocation with no
// subtest selection. The entire output is lower-cased and then searched for
// "fail", "skip" and "success" in that priority order.
//
// Unlike ParseSubtest this is case-insensitive. The asymmetry matches the
// observed behavior of the binaries' existing consumers and is preserved
// deliberately; see the package tests.
func ParseRun(log string) Status {
	log = strings.ToLower(log)
	switch {
	case strings.Contains(log, "fail"):
		return Fail
	case strings.Contains(log, "skip"):
		return Skip
	case strings.Contains(log, "success"):
		return Pass
	default:
		return Unknown
	}
}
