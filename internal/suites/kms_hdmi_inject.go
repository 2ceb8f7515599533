// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_hdmi_inject",
		Binary: "kms_hdmi_inject",
		Desc:   "Tests for validating hdmi inject",
		Subtests: []catalog.Subtest{
			{
				Name:      "inject-4k",
				Desc:      "Make sure that 4K modes exposed by DRM match the forced EDID and modesetting using it succeed.",
				Rationale: "EDID is solid",
			},
		},
	})
}
