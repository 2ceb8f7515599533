// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package naming

import "testing"

func TestGTestName(t *testing.T) {
	for _, c := range []struct {
		raw, want string
	}{
		{"getclient-simple", "GetclientSimple"},
		{"basic", "Basic"},
		{"read-crc", "ReadCrc"},
		{"linear-tiling-%d-displays-%s", "LinearTilingDisplays"},
		{"connected-linear-tiling-%d-displays-%s", "ConnectedLinearTilingDisplays"},
		{"%s-rotation-180", "Rotation180"},
		{"%s-rotation-%d", "Rotation"},
		{"multiplane-rotation-cropping-%s", "MultiplaneRotationCropping"},
		{"get_properties-sanity-atomic", "Get_propertiesSanityAtomic"},
		{"ts-continuation-modeset-rpm", "TsContinuationModesetRpm"},
		// Segments emptied by placeholder removal are dropped silently.
		{"%s-%d", ""},
		{"", ""},
		{"a--b", "AB"},
	} {
		if got := GTestName(c.raw); got != c.want {
			t.Errorf("GTestName(%q) = %q; want %q", c.raw, got, c.want)
		}
	}
}
