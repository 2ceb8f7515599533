// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package suites registers the static catalogs of the known IGT display
// validation binaries, one file per binary.
//
// Importing this package (typically for side effects from the runner
// executable) populates the catalog's global registry. Subtest names,
// descriptions and rationales mirror the upstream IGT catalogs; the
// rationale is surfaced to the reader only when a check fails.
package suites
