// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_properties",
		Binary: "kms_properties",
		Desc:   "Test to validate the properties of all planes, crtc and connectors",
		Subtests: []catalog.Subtest{
			{
				Name:      "get_properties-sanity-atomic",
				Desc:      "Test validates the properties of all planes, crtc and connectors with atomic commit",
				Rationale: "Failure here could lead to all sorts of unexpected behavior - some props are reflection of HW caps",
			},
			{
				Name:      "plane-properties-atomic",
				Desc:      "Tests plane properties with atomic commit",
				Rationale: "basic prop functionality for planes",
			},
			{
				Name:      "crtc-properties-atomic",
				Desc:      "Tests crtc properties with atomic commit",
				Rationale: "basic prop functionality for crtcs",
			},
			{
				Name:      "connector-properties-atomic",
				Desc:      "Tests connector properties with atomic commit",
				Rationale: "basic prop functionality for connectors",
			},
		},
	})
}
