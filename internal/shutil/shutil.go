// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package shutil provides shell-related utility functions used when
// logging the command lines of invoked test binaries.
package shutil

import (
	"regexp"
	"strings"
)

// Leading equals signs are unsafe in zsh, so they are only allowed in
// trailing positions. \w is equivalent to [0-9A-Za-z_].
var safeRE = regexp.MustCompile(`^[-\w@%+:,./][-\w@%+:,./=]*$`)

// Escape escapes a string so it can be safely included as an argument in a
// shell command line. The string is unmodified if it is already safe.
func Escape(s string) string {
	if safeRE.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// EscapeSlice escapes a slice of strings so each will be treated as a
// separate argument in the returned shell command line.
func EscapeSlice(args []string) string {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = Escape(arg)
	}
	return strings.Join(escaped, " ")
}
