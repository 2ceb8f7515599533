// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package result

import "testing"

// recorder implements Reporter and records the single call made to it.
type recorder struct {
	calls int
	kind  string
	msg   string
}

func (r *recorder) Pass() { r.calls++; r.kind = "pass" }

func (r *recorder) Fail(msg string) { r.calls++; r.kind = "fail"; r.msg = msg }

func (r *recorder) Skip(msg string) { r.calls++; r.kind = "skip"; r.msg = msg }

func TestReport(t *testing.T) {
	const (
		log       = "Subtest basic: FAIL\n"
		desc      = "Check if addfb2 call works with given handle"
		rationale = "fundamental fb mgmt"
	)

	for _, c := range []struct {
		st       Status
		wantKind string
		wantMsg  string
	}{
		{Pass, "pass", ""},
		{Fail, "fail", log + "\nWhat the test is doing: " + desc + "\nWhy the test should be fixed: " + rationale + "\n"},
		{Skip, "skip", log},
		{Unknown, "fail", "Could not determine test result.\n" + log},
	} {
		var r recorder
		Report(&r, c.st, log, desc, rationale)
		if r.calls != 1 {
			t.Errorf("Report(%v) made %d reporter calls; want 1", c.st, r.calls)
			continue
		}
		if r.kind != c.wantKind {
			t.Errorf("Report(%v) signaled %q; want %q", c.st, r.kind, c.wantKind)
		}
		if r.msg != c.wantMsg {
			t.Errorf("Report(%v) message = %q; want %q", c.st, r.msg, c.wantMsg)
		}
	}
}

// An unrecognized result must surface as a failure, never as a skip or a
// silent pass.
func TestReportUnknownIsFailure(t *testing.T) {
	var r recorder
	Report(&r, Unknown, "garbage", "desc", "rationale")
	if r.kind != "fail" {
		t.Errorf("Unknown reported as %q; want %q", r.kind, "fail")
	}
}
