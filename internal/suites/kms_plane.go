// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_plane",
		Binary: "kms_plane",
		Desc:   "Testes for KMS Plane",
		Subtests: []catalog.Subtest{
			{
				Name:      "planar-pixel-format-settings",
				Desc:      "verify planar settings for pixel format are handled correctly",
				Rationale: "hardware correctly handles planar pixel formats",
			},
			{
				Name:      "pixel-format",
				Desc:      "verify the pixel formats for given plane and pipe",
				Rationale: "broader test of formats",
			},
			{
				Name:      "plane-position-hole",
				Desc:      "verify plane position using two planes to create a partially covered screen",
				Rationale: "ensure that the eDP panel can correctly display images from multiple planes, avoiding issues like flickering or incorrect layering of elements on the screen",
			},
		},
	})
}
