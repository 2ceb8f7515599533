// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	const (
		tilingDesc      = "fundamental KMS display functionalities"
		tilingRationale = "fundamental KMS display functionalities"
	)
	catalog.Register(&catalog.Suite{
		Name:   "kms_plane_multiple",
		Binary: "kms_plane_multiple",
		Desc:   "Test atomic mode setting with multiple planes.",
		Subtests: []catalog.Subtest{
			{Name: "tiling-x", Desc: tilingDesc, Rationale: tilingRationale},
			{Name: "tiling-y", Desc: tilingDesc, Rationale: tilingRationale},
			{Name: "tiling-4", Desc: tilingDesc, Rationale: tilingRationale},
		},
	})
}
