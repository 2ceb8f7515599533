// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package runner

import (
	"go.chromium.org/igt/internal/catalog"
	"go.chromium.org/igt/internal/naming"
)

// Case is one schedulable unit of work: a single subtest of a suite, or an
// entire whole-run suite.
type Case struct {
	// Name is the display name reported to consumers. For a subtest it is
	// "<suite>.<NormalizedSubtest>"; for a whole-run suite it is just the
	// suite name.
	Name string
	// Suite is the catalog entry the case belongs to.
	Suite *catalog.Suite
	// Subtest is the selected subtest, or nil for a whole-run suite.
	Subtest *catalog.Subtest
}

// desc returns the human-authored description of what the case checks.
func (c *Case) desc() string {
	if c.Subtest != nil {
		return c.Subtest.Desc
	}
	return c.Suite.Desc
}

// rationale returns the human-authored justification for the case.
func (c *Case) rationale() string {
	if c.Subtest != nil {
		return c.Subtest.Rationale
	}
	return c.Suite.Rationale
}

// Cases expands the suites matched by patterns into the flat, ordered list
// of cases to run. Subtests run in catalog order within their suite.
func Cases(reg *catalog.Registry, patterns []string) ([]*Case, error) {
	suites, err := reg.SuitesForPatterns(patterns)
	if err != nil {
		return nil, err
	}
	var cases []*Case
	for _, s := range suites {
		if s.WholeRun() {
			cases = append(cases, &Case{Name: s.Name, Suite: s})
			continue
		}
		for i := range s.Subtests {
			sub := &s.Subtests[i]
			cases = append(cases, &Case{
				Name:    s.Name + "." + naming.GTestName(sub.Name),
				Suite:   s,
				Subtest: sub,
			})
		}
	}
	return cases, nil
}
