// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_content_protection",
		Binary: "kms_content_protection",
		Desc:   "Test content protection (HDCP)",
		Subtests: []catalog.Subtest{
			{
				Name:      "lic-type-0",
				Desc:      "Test for the integrity of link for type-0 content",
				Rationale: "it's a hardware feature",
			},
			{
				Name:      "lic-type-1",
				Desc:      "Test for the integrity of link for type-1 content",
				Rationale: "it's a hardware feature",
			},
		},
	})
}
