// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:      "kms_sysfs_edid_timing",
		Binary:    "kms_sysfs_edid_timing",
		Desc:      "This test checks the time it takes to reprobe each connector and fails if either the time it takes for one reprobe is too long or if the mean time it takes to reprobe one connector is too long. Additionally, make sure that the mean time for all connectors is not too long.",
		Rationale: "we don't want tests taking forever to (re)probe",
	})
}
