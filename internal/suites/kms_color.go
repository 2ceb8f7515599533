// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_color",
		Binary: "kms_color",
		Desc:   "Test Color Features at Pipe level",
		Subtests: []catalog.Subtest{
			{
				Name:      "deep-color",
				Desc:      "Verify that deep color works correctly",
				Rationale: "essential for high-quality displays and accurate color representation",
			},
			{
				Name:      "degamma",
				Desc:      "Verify that degamma LUT transformation works correctly",
				Rationale: "verifies that the degamma LUT is applied correctly by the hardware",
			},
			{
				Name:      "gamma",
				Desc:      "Verify that gamma LUT transformation works correctly",
				Rationale: "checks if the gamma LUT is applied correctly by the hardware",
			},
			{
				Name:      "ctm-%s",
				Desc:      "Check the color transformation",
				Rationale: "checks the hardware's ability to apply various color transformations using CTMs",
			},
		},
	})
}
