// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:      "kms_scaling_modes",
		Binary:    "kms_scaling_modes",
		Desc:      "Test display scaling modes",
		Rationale: "Functionality: edp, plane, scaling",
	})
}
