// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package caps

import (
	"os"
	"path/filepath"
	"testing"

	"go.chromium.org/igt/testutil"
)

func TestReadFile(t *testing.T) {
	td := testutil.TempDir(t)
	defer os.RemoveAll(td)

	const data = `disable:
  - pattern: kms_bw.*
    reason: needs a second display
  - pattern: kms_vblank.wait-idle
    reason: flaky vblank timing
`
	path := filepath.Join(td, "10-board.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	for _, c := range []struct {
		name       string
		wantReason string
		wantOK     bool
	}{
		{"kms_bw.LinearTilingDisplays", "needs a second display", true},
		{"kms_bw.ConnectedLinearTilingDisplays", "needs a second display", true},
		{"kms_vblank.wait-idle", "flaky vblank timing", true},
		{"kms_vblank.wait-busy", "", false},
		{"core_auth.basic-auth", "", false},
	} {
		reason, ok := l.Disabled(c.name)
		if ok != c.wantOK || reason != c.wantReason {
			t.Errorf("Disabled(%q) = (%q, %v); want (%q, %v)", c.name, reason, ok, c.wantReason, c.wantOK)
		}
	}
}

func TestReadFileRejectsBadRules(t *testing.T) {
	td := testutil.TempDir(t)
	defer os.RemoveAll(td)

	for _, c := range []struct {
		desc, data string
	}{
		{"missing reason", "disable:\n  - pattern: kms_bw.*\n"},
		{"empty pattern", "disable:\n  - reason: because\n"},
		{"bad yaml", ":::\n"},
		{"bad pattern", "disable:\n  - pattern: \"kms bw\"\n    reason: r\n"},
	} {
		path := filepath.Join(td, "10-bad.yaml")
		if err := os.WriteFile(path, []byte(c.data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadFile(path); err == nil {
			t.Errorf("%s: ReadFile unexpectedly succeeded", c.desc)
		}
	}
}

func TestReadDirLayering(t *testing.T) {
	td := testutil.TempDir(t)
	defer os.RemoveAll(td)

	files := map[string]string{
		// Baseboard disables everything vblank-related.
		"10-baseboard.yaml": "disable:\n  - pattern: kms_vblank.*\n    reason: no display\n",
		// Board re-enables one case.
		"20-board.yaml": "disable:\n  - pattern: kms_vblank.wait-idle\n    enable: true\n",
		// Ignored: no numeric prefix.
		"README.yaml": "disable:\n  - pattern: core_auth.*\n    reason: ignored\n",
	}
	if err := testutil.WriteFiles(td, files); err != nil {
		t.Fatal(err)
	}

	l, err := ReadDir(td)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	if reason, ok := l.Disabled("kms_vblank.wait-busy"); !ok || reason != "no display" {
		t.Errorf(`Disabled("kms_vblank.wait-busy") = (%q, %v); want ("no display", true)`, reason, ok)
	}
	if reason, ok := l.Disabled("kms_vblank.wait-idle"); ok {
		t.Errorf(`Disabled("kms_vblank.wait-idle") = (%q, %v); want re-enabled`, reason, ok)
	}
	if _, ok := l.Disabled("core_auth.basic-auth"); ok {
		t.Error("Rule from non-layered file was applied")
	}
}

func TestReadDirMissing(t *testing.T) {
	l, err := ReadDir("/nonexistent/igt-caps")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if !l.Empty() {
		t.Error("ReadDir of missing dir returned non-empty list")
	}
}
