// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_plane_cursor",
		Binary: "kms_plane_cursor",
		Desc:   "Tests cursor interactions with primary and overlay planes.",
		Subtests: []catalog.Subtest{
			{
				Name:      "primary",
				Desc:      "Tests atomic cursor positioning on primary plane",
				Rationale: "checks for inability to control the cursor position accurately, impacting user interaction.",
			},
		},
	})
}
