// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_addfb_basic",
		Binary: "kms_addfb_basic",
		Desc:   "Sanity test for ioctls DRM_IOCTL_MODE_ADDFB2 & DRM_IOCTL_MODE_RMFB.",
		Subtests: []catalog.Subtest{
			{
				Name:      "basic",
				Desc:      "Check if addfb2 call works with given handle",
				Rationale: "fundamentral fb mgmt",
			},
		},
	})
}
