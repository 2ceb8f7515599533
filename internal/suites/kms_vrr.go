// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_vrr",
		Binary: "kms_vrr",
		Desc:   "Test to validate different features of VRR",
		Subtests: []catalog.Subtest{
			{
				Name:      "flipline",
				Desc:      "Make sure that flips happen at flipline decision boundary",
				Rationale: "smoother visual experience, especially in games and video",
			},
			{
				Name:      "lobf",
				Desc:      "Test to validate link-off between active frames in non-psr operation",
				Rationale: "ensures that the feature works correctly",
			},
		},
	})
}
