// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_display_modes",
		Binary: "kms_display_modes",
		Desc:   "Test Display Modes",
		Subtests: []catalog.Subtest{
			{
				Name:      "extended-mode-basic",
				Desc:      "Test for validating display extended mode with a pair of connected displays",
				Rationale: "common use case",
			},
		},
	})
}
