// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package result

import "testing"

func TestParseSubtest(t *testing.T) {
	for _, c := range []struct {
		desc, log, name string
		want            Status
	}{
		{"success marker", "Starting subtest: basic\nSubtest basic: SUCCESS (0.21s)\n", "basic", Pass},
		{"fail marker", "Subtest basic: FAIL (1.02s)\n", "basic", Fail},
		{"skip marker", "Subtest read-crc: SKIP\n", "read-crc", Skip},
		{"no marker", "Starting subtest: basic\n", "basic", Unknown},
		{"empty output", "", "basic", Unknown},
		{"marker for other subtest", "Subtest other: SUCCESS\n", "basic", Unknown},
		// FAIL wins over SUCCESS when both markers are present.
		{"fail beats success", "Subtest basic: SUCCESS\nSubtest basic: FAIL\n", "basic", Fail},
		{"fail beats skip", "Subtest basic: SKIP\nSubtest basic: FAIL\n", "basic", Fail},
		{"skip beats success", "Subtest basic: SUCCESS\nSubtest basic: SKIP\n", "basic", Skip},
		// The per-subtest search is case-SENSITIVE. This asymmetry with
		// ParseRun looks like an oversight in the binaries' original
		// consumer, but it is preserved intentionally; do not "fix" it
		// without renegotiating the binaries' output contract.
		{"lowercase marker not recognized", "Subtest basic: success\n", "basic", Unknown},
	} {
		if got := ParseSubtest(c.log, c.name); got != c.want {
			t.Errorf("%s: ParseSubtest(%q, %q) = %v; want %v", c.desc, c.log, c.name, got, c.want)
		}
	}
}

func TestParseRun(t *testing.T) {
	for _, c := range []struct {
		desc, log string
		want      Status
	}{
		{"uppercase success", "... SUCCESS ...", Pass},
		{"lowercase success", "... success ...", Pass},
		{"mixed-case fail", "Total failures: 1", Fail},
		{"skip", "All checks SKIPped", Skip},
		{"no marker", "nothing to see here", Unknown},
		{"empty output", "", Unknown},
		// Priority order: fail, then skip, then success.
		{"fail beats success", "1 success, 1 FAIL", Fail},
		{"skip beats success", "SKIP then success", Skip},
	} {
		if got := ParseRun(c.log); got != c.want {
			t.Errorf("%s: ParseRun(%q) = %v; want %v", c.desc, c.log, got, c.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	for _, c := range []struct {
		st   Status
		want string
	}{
		{Pass, "pass"},
		{Fail, "fail"},
		{Skip, "skip"},
		{Unknown, "unknown"},
	} {
		if got := c.st.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q; want %q", int(c.st), got, c.want)
		}
	}
}
