// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

const (
	kmsBwDesc      = "pushes the display pipeline's bandwidth to its limits using a high-resolution configuration"
	kmsBwRationale = "Failure could indicate the system can't handle demanding display tasks, leading to slowdowns or an inability to drive the display at its native resolution"
)

func init() {
	// The bandwidth checks are subtests of the kms_flip binary.
	catalog.Register(&catalog.Suite{
		Name:   "kms_bw",
		Binary: "kms_flip",
		Desc:   "BW test with different resolutions",
		Subtests: []catalog.Subtest{
			{
				Name:      "linear-tiling-%d-displays-%s",
				Desc:      kmsBwDesc,
				Rationale: kmsBwRationale,
			},
			{
				Name:      "connected-linear-tiling-%d-displays-%s",
				Desc:      kmsBwDesc,
				Rationale: kmsBwRationale,
			},
		},
	})
}
