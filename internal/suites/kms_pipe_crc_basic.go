// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_pipe_crc_basic",
		Binary: "kms_pipe_crc_basic",
		Desc:   "Tests behaviour of CRC",
		Subtests: []catalog.Subtest{
			{
				Name:      "read-crc",
				Desc:      "Test for pipe CRC reads",
				Rationale: "ensures we can read the CRC which we utilize in a lot of tests",
			},
			{
				Name:      "hang-read-crc",
				Desc:      "Hang test for pipe CRC read",
				Rationale: "Failure might indicate severe issues with hardware stability and error recovery",
			},
			{
				Name:      "read-crc-frame-sequence",
				Desc:      "Tests the pipe CRC read and ensure frame sequence.",
				Rationale: "verify that the display is outputting the correct pixels.",
			},
			{
				Name:      "suspend-read-crc",
				Desc:      "Suspend test for pipe CRC reads",
				Rationale: "verify that the display is outputting the correct pixels.",
			},
		},
	})
}
