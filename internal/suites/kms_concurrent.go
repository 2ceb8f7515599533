// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_concurrent",
		Binary: "kms_concurrent",
		Desc:   "Test atomic mode setting concurrently with multiple planes and screen resolution",
		Subtests: []catalog.Subtest{
			{
				Name:      "multi-plane-atomic-lowres",
				Desc:      "Test atomic mode setting concurrently with multiple planes and screen resolution.",
				Rationale: "concurrent operations",
			},
		},
	})
}
