// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package runner

import (
	"encoding/json"
	"os"
	"time"
)

// ResultsFilename is the file name used by WriteResults.
const ResultsFilename = "results.json"

// Error describes an error encountered while running a case.
type Error struct {
	Time   time.Time `json:"time"`
	Reason string    `json:"reason"`
}

// Result represents the outcome of a single case.
type Result struct {
	// Name is the display name of the case.
	Name string `json:"name"`
	// Suite and Subtest identify the catalog entry. Subtest holds the raw
	// upstream subtest name and is empty for whole-run suites.
	Suite   string `json:"suite"`
	Subtest string `json:"subtest,omitempty"`
	// Desc describes what the case checks.
	Desc string `json:"desc"`
	// Errors contains errors encountered while running the case. If it is
	// empty and SkipReason is empty, the case passed.
	Errors []Error `json:"errors"`
	// Start is the time at which the case started.
	Start time.Time `json:"start"`
	// End is the time at which the case completed.
	End time.Time `json:"end"`
	// SkipReason contains a human-readable explanation of why the case was
	// skipped. It is empty if the case actually ran.
	SkipReason string `json:"skipReason,omitempty"`
}

// WriteResults saves results to path as a JSON array.
func WriteResults(path string, results []*Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
