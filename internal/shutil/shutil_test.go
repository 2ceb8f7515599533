// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shutil

import "testing"

func TestEscape(t *testing.T) {
	for _, c := range []struct {
		in, want string
	}{
		{``, `''`},
		{` `, `' '`},
		{`kms_vblank`, `kms_vblank`},
		{`--run-subtest`, `--run-subtest`},
		{`a b`, `'a b'`},
		{`AZaz09@%_+=:,./-`, `AZaz09@%_+=:,./-`},
		{`a!b`, `'a!b'`},
		{`'`, `''"'"''`},
		{`"`, `'"'`},
		{`=foo`, `'=foo'`},
	} {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeSlice(t *testing.T) {
	in := []string{"/data/igt_tests/x86_64/kms_vblank64", "--run-subtest", "wait idle"}
	const want = `/data/igt_tests/x86_64/kms_vblank64 --run-subtest 'wait idle'`
	if got := EscapeSlice(in); got != want {
		t.Errorf("EscapeSlice(%q) = %q; want %q", in, got, want)
	}
}
