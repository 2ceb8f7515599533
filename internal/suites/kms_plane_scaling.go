// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_plane_scaling",
		Binary: "kms_plane_scaling",
		Desc:   "Test display plane scaling",
		Subtests: []catalog.Subtest{
			{
				Name:      "plane-scaler-unity-scaling-with-rotation",
				Desc:      "Tests scaling with rotation, unity scaling",
				Rationale: "checks if the hardware can correctly combine scaling and rotation. Even with unity scaling, the hardware needs to perform the rotation while maintaining the image quality and avoiding artifacts",
			},
			{
				Name:      "plane-scaler-with-clipping-clamping-rotation",
				Desc:      "Tests scaling with clipping and clamping, rotation",
				Rationale: "checks if the hardware can correctly handle scaling with additional constraints (clipping and clamping) while also performing rotation",
			},
			{
				Name:      "plane-scaler-unity-scaling-with-pixel-format",
				Desc:      "Tests scaling with pixel formats, unity scaling",
				Rationale: "failure indicate problems with displaying content at the native resolution of the eDP panel, potentially causing blurry or distorted images",
			},
			{
				Name:      "plane-downscale-factor-0-5-with-pixel-format",
				Desc:      "Tests downscaling with pixel formats for 0.5 scaling factor.",
				Rationale: "checks if the eDP panel can correctly downscale images, which is important for scenarios like displaying a lower-resolution video on the high-resolution panel, preventing issues like incorrect scaling artifacts or a black screen",
			},
		},
	})
}
