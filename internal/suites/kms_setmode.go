// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_setmode",
		Binary: "kms_setmode",
		Desc:   "Tests the mode by iterating through all valid/invalid crtc/connector combinations",
		Subtests: []catalog.Subtest{
			{
				Name:      "basic",
				Desc:      "Tests the vblank timing by iterating through all valid crtc/connector combinations",
				Rationale: "basic functionality",
			},
		},
	})
}
