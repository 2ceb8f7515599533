// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_prop_blob",
		Binary: "kms_prop_blob",
		Desc:   "Tests behaviour of mass-data 'blob' properties.",
		Subtests: []catalog.Subtest{
			{
				Name:      "blob-prop-core",
				Desc:      "Tests error handling when invalid property IDs are passed.",
				Rationale: "DRM property blob functionality",
			},
			{
				Name:      "blob-prop-validate",
				Desc:      "Tests error handling when incorrect blob size is passed.",
				Rationale: "DRM property blob functionality",
			},
			{
				Name:      "blob-prop-lifetime",
				Desc:      "Tests validates the lifetime of the properties created",
				Rationale: "DRM property blob functionality",
			},
		},
	})
}
