// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_tiled_display",
		Binary: "kms_tiled_display",
		Desc:   "Test for Transcoder Port Sync for Display Port Tiled Displays",
		Subtests: []catalog.Subtest{
			{
				Name:      "basic-test-pattern",
				Desc:      "Make sure the Tiled CRTCs are synchronized and we get page flips for all tiled CRTCs in one vblank",
				Rationale: "Failure could lead to tearing or other visual artifacts",
			},
		},
	})
}
