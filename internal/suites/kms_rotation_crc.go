// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_rotation_crc",
		Binary: "kms_rotation_crc",
		Desc:   "Tests different rotations with different planes & formats",
		Subtests: []catalog.Subtest{
			{
				Name:      "%s-rotation-180",
				Desc:      "Rotation test with 180 degree for (primary/sprite/cursor) planes",
				Rationale: "plane rotation",
			},
			{
				Name:      "%s-rotation-%d",
				Desc:      "Rotation test with (90/270) degree for (primary/sprite) planes of gen9+",
				Rationale: "plane rotation",
			},
			{
				Name:      "bad-pixel-format",
				Desc:      "Checking unsupported pixel format for gen9+ with 90 degree of rotation",
				Rationale: "plane rotation",
			},
			{
				Name:      "bad-tiling",
				Desc:      "Checking unsupported tiling for gen9+ with 90 degree of rotation",
				Rationale: "plane rotation",
			},
			{
				Name:      "multiplane-rotation",
				Desc:      "Rotation test on both planes by making them fully visible",
				Rationale: "plane rotation",
			},
			{
				Name:      "multiplane-rotation-cropping-%s",
				Desc:      "Rotation test on both planes by cropping left/(bottom/top) corner of primary plane and right/(bottom/top) corner of sprite plane",
				Rationale: "plane rotation",
			},
		},
	})
}
