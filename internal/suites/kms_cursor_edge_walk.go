// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package suites

import "go.chromium.org/igt/internal/catalog"

// kms_cursor_edge_walk has no stable subtest list, so the whole binary
// runs at once and the aggregate output is classified.
func init() {
	catalog.Register(&catalog.Suite{
		Name:      "kms_cursor_edge_walk",
		Binary:    "kms_cursor_edge_walk",
		Desc:      "Test to check different cursor sizes by walking different edges of screen",
		Rationale: "Functionality: cursor",
	})
}
