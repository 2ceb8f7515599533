// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

func init() {
	catalog.Register(&catalog.Suite{
		Name:   "kms_vblank",
		Binary: "kms_vblank",
		Desc:   "Test speed of WaitVblank.",
		Subtests: []catalog.Subtest{
			{
				Name:      "crtc-id",
				Desc:      "Check the vblank and flip events works with given crtc id",
				Rationale: "If this fails, almost everything else display-related is likely broken as well.",
			},
			{
				Name:      "ts-continuation-modeset-rpm",
				Desc:      "Test TS continuty with DPMS & RPM while hanging by introducing NOHANG flag",
				Rationale: "Failure could point to serious issues with power management and modesetting, leading to display instability during use",
			},
			{
				Name:      "accuracy-idle",
				Desc:      "Test Accuracy of vblank events while hanging by introducing NOHANG Flag",
				Rationale: "Inaccurate signals can lead to performance problems, visual artifacts, or even the inability to display an image at all",
			},
			{
				Name:      "wait-idle",
				Desc:      "Time taken to wait for vblanks",
				Rationale: "checks for performance degradation and reduced system responsiveness",
			},
			{
				Name:      "wait-busy",
				Desc:      "Time taken to wait for vblanks (during V-active)",
				Rationale: "checks for system instability and unresponsiveness under heavy load",
			},
			{
				Name:      "ts-continuation-idle",
				Desc:      "TS continuty",
				Rationale: "checks for timing issues",
			},
		},
	})
}
