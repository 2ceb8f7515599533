// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_atomic_interruptible",
		Binary: "kms_atomic_interruptible",
		Desc:   "Tests that interrupt various atomic ioctls",
		Subtests: []catalog.Subtest{
			{
				Name:      "atomic-setmode",
				Desc:      "Validate atomic modeset by interruption",
				Rationale: "interruptibility",
			},
			{
				Name:      "universal-setplane-primary",
				Desc:      "Validate atomic setplane on primary by interruption",
				Rationale: "interruptibility",
			},
			{
				Name:      "universal-setplane-cursor",
				Desc:      "Validate atomic setplane on cursor by interruption",
				Rationale: "interruptibility, otherwise it's not",
			},
		},
	})
}
