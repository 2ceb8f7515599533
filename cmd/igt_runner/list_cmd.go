// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"go.chromium.org/igt/internal/catalog"
	"go.chromium.org/igt/internal/logging"
	"go.chromium.org/igt/internal/runner"
)

// listCmd implements subcommands.Command to support listing cases.
type listCmd struct {
	json   bool      // marshal cases to JSON instead of just printing names
	stdout io.Writer // where to write cases
}

var _ = subcommands.Command(&listCmd{})

// newListCmd returns a new listCmd that will write cases to stdout.
func newListCmd(stdout io.Writer) *listCmd {
	return &listCmd{stdout: stdout}
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list test cases" }
func (*listCmd) Usage() string {
	return `Usage: list [flag]... [pattern]...

Description:
    List cases matched by zero or more patterns. Patterns are globs matching
    suite names; with no patterns every known case is listed.

    To list all cases of the vblank and cursor suites:

        $ igt_runner list 'kms_vblank' 'kms_*cursor*'

Flag:
`
}

func (lc *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&lc.json, "json", false, "print full case details as JSON")
}

func (lc *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cases, err := runner.Cases(catalog.Global(), f.Args())
	if err != nil {
		logging.Info(ctx, "Failed to list cases: ", err)
		return subcommands.ExitUsageError
	}
	if err := lc.printCases(cases); err != nil {
		logging.Info(ctx, "Failed to write cases: ", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// jsonCase is the schema used by "list -json".
type jsonCase struct {
	Name    string `json:"name"`
	Suite   string `json:"suite"`
	Binary  string `json:"binary"`
	Subtest string `json:"subtest,omitempty"`
	Desc    string `json:"desc"`
}

// printCases writes the supplied cases to lc.stdout.
func (lc *listCmd) printCases(cases []*runner.Case) error {
	if !lc.json {
		// If -json wasn't passed, just print case names, one per line.
		for _, c := range cases {
			if _, err := fmt.Fprintln(lc.stdout, c.Name); err != nil {
				return err
			}
		}
		return nil
	}

	jcs := make([]*jsonCase, len(cases))
	for i, c := range cases {
		jc := &jsonCase{
			Name:   c.Name,
			Suite:  c.Suite.Name,
			Binary: c.Suite.Binary,
			Desc:   c.Suite.Desc,
		}
		if c.Subtest != nil {
			jc.Subtest = c.Subtest.Name
			jc.Desc = c.Subtest.Desc
		}
		jcs[i] = jc
	}
	enc := json.NewEncoder(lc.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jcs)
}
