// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	"go.chromium.org/igt/internal/command"
	"go.chromium.org/igt/internal/control"
	"go.chromium.org/igt/internal/harness"
	"go.chromium.org/igt/internal/logging"
	"go.chromium.org/igt/internal/runner"
)

const defaultResDirBase = "/data/igt_results" // resDir default, timestamped per run

// runCmd implements subcommands.Command to support running cases.
type runCmd struct {
	cfg          runner.Config
	resDir       string        // result dir; empty means a timestamped dir under defaultResDirBase
	report       bool          // write control messages to stdout for machine consumption
	heartbeat    time.Duration // interval between heartbeat messages; 0 disables them
	failForTests bool          // exit with 1 if any individual cases fail
}

var _ = subcommands.Command(&runCmd{})

func newRunCmd() *runCmd {
	return &runCmd{}
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run test cases" }
func (*runCmd) Usage() string {
	return `Usage: run [flag]... [pattern]...

Description:
    Runs the cases matched by zero or more patterns; with no patterns every
    known case runs. Patterns are globs matching suite names.
    Exits with 0 if all selected cases were executed, even if some of them
    failed. Non-zero exit codes indicate high-level issues. Callers should
    examine results.json for failing cases. -failfortests can be supplied
    to override this behavior.

    To run everything cursor-related:

        $ igt_runner run 'kms_*cursor*'

Flag:
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.cfg.Bin.BinDir, "bindir", harness.DefaultBinDir, "directory containing IGT binaries")
	f.StringVar(&r.cfg.Bin.Arch, "arch", harness.DefaultArch, "architecture subdirectory under bindir")
	f.StringVar(&r.cfg.CapsDir, "capsdir", "", "directory containing device capability files")
	f.StringVar(&r.resDir, "resdir", "", "directory where result files are written")
	f.BoolVar(&r.report, "report", false, "write control messages to stdout")
	f.DurationVar(&r.heartbeat, "heartbeat", 0, "interval between heartbeat messages (requires -report)")
	f.BoolVar(&r.failForTests, "failfortests", false, "exit with 1 if any cases fail")
	f.BoolVar(&r.cfg.SkipSysInfo, "nosysinfo", false, "skip the system info snapshot at run start")
}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r.cfg.Patterns = f.Args()

	updateLatest := r.resDir == ""
	if updateLatest {
		r.resDir = filepath.Join(defaultResDirBase, time.Now().Format("20060102-150405"))
	}
	if err := os.MkdirAll(r.resDir, 0755); err != nil {
		logging.Info(ctx, err)
		return subcommands.ExitFailure
	}
	// Update the "latest" symlink if the default result directory is used.
	if updateLatest {
		link := filepath.Join(filepath.Dir(r.resDir), "latest")
		os.Remove(link)
		if err := os.Symlink(filepath.Base(r.resDir), link); err != nil {
			logging.Info(ctx, "Failed to create results symlink: ", err)
		}
	}
	r.cfg.OutDir = r.resDir

	var mw *control.MessageWriter
	if r.report {
		mw = control.NewMessageWriter(os.Stdout)
		// Progress logs also go into the control stream so machine
		// consumers see them alongside the result messages.
		ctx = logging.AttachLogger(ctx, newRunLogMirror(mw))
		if r.heartbeat > 0 {
			hw := control.NewHeartbeatWriter(mw, r.heartbeat)
			defer hw.Stop()
		}
	}

	results, err := runner.Run(ctx, &r.cfg, mw)
	if err != nil {
		serr := command.NewStatusErrorf(1, "run failed: %v", err)
		if mw != nil {
			mw.WriteMessage(&control.RunError{Time: time.Now(), Reason: err.Error(), Status: serr.Status()})
		}
		command.WriteError(os.Stderr, serr)
		return subcommands.ExitFailure
	}

	var passed, failed, skipped int
	for _, res := range results {
		switch {
		case res.SkipReason != "":
			skipped++
		case len(res.Errors) > 0:
			failed++
		default:
			passed++
		}
	}
	logging.Infof(ctx, "Ran %d case(s): %d passed, %d failed, %d skipped", len(results), passed, failed, skipped)
	logging.Info(ctx, "Results saved to ", r.resDir)

	if r.failForTests && failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// newRunLogMirror returns a logger mirroring INFO entries into RunLog
// control messages on mw.
func newRunLogMirror(mw *control.MessageWriter) logging.Logger {
	return logging.NewFuncLogger(func(level logging.Level, ts time.Time, msg string) {
		if level >= logging.LevelInfo {
			mw.WriteMessage(&control.RunLog{Time: ts, Text: msg})
		}
	})
}
