// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "core_auth",
		Binary: "core_auth",
		Desc:   "Checks DRM authentication",
		Subtests: []catalog.Subtest{
			{
				Name:      "getclient-simple",
				Desc:      "Check drm client is always authenticated",
				Rationale: "ensuring that auth works correctly is probably P0 from a security perspective",
			},
			{
				Name:      "getclient-master-drop",
				Desc:      "Use 2 clients, check second is authenticated even when first dropped",
				Rationale: "ensuring that auth works correctly is probably P0 from a security perspective",
			},
			{
				Name:      "basic-auth",
				Desc:      "Test magic numbers for master and slave",
				Rationale: "ensuring that auth works correctly is probably P0 from a security perspective",
			},
		},
	})
}
