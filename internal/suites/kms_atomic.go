// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_atomic",
		Binary: "kms_atomic",
		Desc:   "Test atomic modesetting API",
		Subtests: []catalog.Subtest{
			{
				Name:      "atomic-invalid-params",
				Desc:      "Test abuse the atomic ioctl directly in order to test various invalid conditions which the libdrm wrapper won't allow us to create",
				Rationale: "important for ensuring the robustness and security of the atomic modesetting API",
			},
			{
				Name:      "atomic-plane-damage",
				Desc:      "Simple test cases to use FB_DAMAGE_CLIPS plane property",
				Rationale: "important for optimizing performance by only updating the portion of the display that has changed",
			},
			{
				Name:      "test-only",
				Desc:      "Test to ensure that DRM_MODE_ATOMIC_TEST_ONLY really only touches the free-standing state objects and nothing else.",
				Rationale: "useful for validating a complex modeset configuration before committing to it such",
			},
			{
				Name:      "plane-primary-overlay-mutable-zpos",
				Desc:      "Verify that the overlay plane can cover the primary one (and vice versa) by changing their zpos property",
				Rationale: "important for ensuring that the overlay can be displayed correctly on top of or behind the primary plane",
			},
			{
				Name:      "plane-immutable-zpos",
				Desc:      "Verify the reported zpos property of planes by making sure only higher zpos planes cover the lower zpos ones",
				Rationale: "important for ensuring that the planes are displayed in the correct order",
			},
		},
	})
}
