// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package runner drives IGT display validation binaries end to end: it
// expands the catalog into cases, skips cases disabled by device
// capability files, invokes the binaries one at a time, classifies their
// output and reports outcomes as control messages and result files.
//
// The run is strictly sequential. IGT binaries assume exclusive ownership
// of the display pipeline, so cases never run concurrently, and a failed
// case never aborts the run; every selected case is attempted exactly
// once.
package runner

import (
	"context"
	"path/filepath"
	"time"

	"go.chromium.org/igt/internal/caps"
	"go.chromium.org/igt/internal/catalog"
	"go.chromium.org/igt/internal/control"
	"go.chromium.org/igt/internal/errors"
	"go.chromium.org/igt/internal/harness"
	"go.chromium.org/igt/internal/logging"
	"go.chromium.org/igt/internal/result"
	"go.chromium.org/igt/internal/sysinfo"
)

// Config configures a run.
type Config struct {
	// Bin describes where the IGT binaries are installed.
	Bin harness.Config
	// OutDir is the directory where results.json and results.xml are
	// written. If empty, no result files are written.
	OutDir string
	// CapsDir is the directory holding device capability files. If empty
	// or missing, no cases are disabled.
	CapsDir string
	// Patterns selects the suites to run; empty means all. Patterns may
	// contain '*' wildcards and match suite names only, never individual
	// subtests.
	Patterns []string
	// Registry supplies the suite catalog. If nil, the process-wide
	// registry is used.
	Registry *catalog.Registry

	// SkipSysInfo disables the system info snapshot at run start.
	// Collection touches /proc and /sys and is pointless off-device.
	SkipSysInfo bool
}

func (c *Config) registry() *catalog.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return catalog.Global()
}

// Run executes all selected cases and returns their results. Control
// messages describing progress are written to mw, which may be nil.
//
// An error is returned only for run-level problems (bad patterns,
// unreadable capability files, unwritable result files). Case failures are
// recorded in the results, not returned.
func Run(ctx context.Context, cfg *Config, mw *control.MessageWriter) ([]*Result, error) {
	cases, err := Cases(cfg.registry(), cfg.Patterns)
	if err != nil {
		return nil, err
	}
	disabled, err := caps.ReadDir(cfg.CapsDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read capability files")
	}
	if !disabled.Empty() {
		logging.Info(ctx, "Applying capability rules from ", cfg.CapsDir)
	}

	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	emit(mw, &control.RunStart{Time: time.Now(), TestNames: names})

	if !cfg.SkipSysInfo {
		logging.Info(ctx, "Running on ", sysinfo.Collect(ctx))
	}

	// One Binary per executable; several suites may front the same one.
	bins := make(map[string]*harness.Binary)
	var results []*Result
	for _, c := range cases {
		bin := bins[c.Suite.Binary]
		if bin == nil {
			if bin, err = harness.New(cfg.Bin, c.Suite.Binary); err != nil {
				return nil, err
			}
			bins[c.Suite.Binary] = bin
		}
		results = append(results, runCase(ctx, c, bin, disabled, mw))
	}

	if cfg.OutDir != "" {
		if err := WriteResults(filepath.Join(cfg.OutDir, ResultsFilename), results); err != nil {
			return nil, errors.Wrap(err, "failed to write results")
		}
		if err := WriteJUnitXMLResults(filepath.Join(cfg.OutDir, JUnitXMLFilename), results); err != nil {
			return nil, errors.Wrap(err, "failed to write JUnit results")
		}
	}
	emit(mw, &control.RunEnd{Time: time.Now(), OutDir: cfg.OutDir})
	return results, nil
}

// runCase runs a single case to completion and returns its result.
func runCase(ctx context.Context, c *Case, bin *harness.Binary, disabled *caps.List, mw *control.MessageWriter) *Result {
	res := &Result{
		Name:  c.Name,
		Suite: c.Suite.Name,
		Desc:  c.desc(),
		Start: time.Now(),
	}
	if c.Subtest != nil {
		res.Subtest = c.Subtest.Name
	}
	emit(mw, &control.TestStart{Time: res.Start, Name: c.Name, Desc: res.Desc})
	defer func() {
		res.End = time.Now()
		emit(mw, &control.TestEnd{Time: res.End, Name: c.Name, SkipReason: res.SkipReason})
	}()

	if reason, ok := disabled.Disabled(c.Name); ok {
		logging.Info(ctx, "Skipping ", c.Name, ": ", reason)
		res.SkipReason = reason
		return res
	}

	logging.Info(ctx, "Running ", c.Name)
	var log string
	var err error
	if c.Subtest != nil {
		log, err = bin.RunSubtest(ctx, c.Subtest.Name)
	} else {
		log, err = bin.Run(ctx)
	}
	if err != nil {
		// The binary never started; classification never runs.
		rec := &recorder{res: res, mw: mw}
		rec.Fail(err.Error())
		return res
	}
	if log != "" {
		emit(mw, &control.TestLog{Time: time.Now(), Text: log})
	}

	var st result.Status
	if c.Subtest != nil {
		st = result.ParseSubtest(log, c.Subtest.Name)
	} else {
		st = result.ParseRun(log)
	}
	result.Report(&recorder{res: res, mw: mw}, st, log, c.desc(), c.rationale())
	return res
}

// recorder translates classified outcomes into the result record and the
// control message stream.
type recorder struct {
	res *Result
	mw  *control.MessageWriter
}

func (r *recorder) Pass() {}

func (r *recorder) Fail(msg string) {
	now := time.Now()
	r.res.Errors = append(r.res.Errors, Error{Time: now, Reason: msg})
	emit(r.mw, &control.TestError{Time: now, Reason: msg})
}

func (r *recorder) Skip(msg string) {
	if msg == "" {
		msg = "skip reported with no output"
	}
	r.res.SkipReason = msg
}

func emit(mw *control.MessageWriter, msg control.Msg) {
	if mw != nil {
		mw.WriteMessage(msg)
	}
}
