// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package naming derives display identifiers for subtests.
//
// Upstream IGT subtest names are dash-delimited and may embed the literal
// placeholder tokens %s and %d (e.g. "linear-tiling-%d-displays-%s").
// Harness-visible identifiers must be single alphanumeric words, so raw
// names are converted to PascalCase with the placeholders removed. The
// result is used only for labeling and grouping, never for matching
// against binary output.
package naming

import "strings"

// placeholders are the literal tokens stripped from raw subtest names.
// They come from the upstream catalog and are never interpolated here.
var placeholders = []string{"%s", "%d"}

// GTestName converts a raw subtest name to a display-safe PascalCase
// identifier: every placeholder token is removed, the remainder is split on
// "-", the first character of each non-empty segment is capitalized, and
// the segments are concatenated without a separator. Segments left empty
// after placeholder removal are dropped.
//
// For example, "linear-tiling-%d-displays-%s" becomes "LinearTilingDisplays".
func GTestName(raw string) string {
	for _, p := range placeholders {
		raw = strings.ReplaceAll(raw, p, "")
	}

	var b strings.Builder
	for _, seg := range strings.Split(raw, "-") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
