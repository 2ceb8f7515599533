// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_hdr",
		Binary: "kms_hdr",
		Desc:   "Test HDR metadata interfaces and bpc switch",
		Subtests: []catalog.Subtest{
			{
				Name:      "bpc-switch",
				Desc:      "Tests switching between different display output bpc modes",
				Rationale: "it's a hardware feature",
			},
			{
				Name:      "invalid-hdr",
				Desc:      "Test to ensure HDR is not enabled on non-HDR panel",
				Rationale: "it's a hardware feature",
			},
			{
				Name:      "invalid-metadata-sizes",
				Desc:      "Tests invalid HDR metadata sizes",
				Rationale: "it's a hardware feature",
			},
		},
	})
}
