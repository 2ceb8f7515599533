// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package command

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"
)

var selfName = filepath.Base(os.Args[0])

// InstallSignalHandler installs a handler for SIGINT and SIGTERM that calls
// callback and then exits. out is the stream to write messages to
// (typically stderr).
//
// On SIGTERM any still-running test binaries are also sent SIGTERM so that
// a hung child does not outlive the runner.
func InstallSignalHandler(out io.Writer, callback func(sig os.Signal)) {
	ch := make(chan os.Signal, 1)
	go func() {
		sig := <-ch
		fmt.Fprintf(out, "\n%s: Caught %v signal; exiting\n", selfName, sig)
		callback(sig)
		if sig == unix.SIGTERM {
			terminateChildren(out)
		}
		os.Exit(1)
	}()
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)
}

// terminateChildren sends SIGTERM to all direct child processes.
func terminateChildren(out io.Writer) {
	procs, err := process.Processes()
	if err != nil {
		fmt.Fprintf(out, "Failed to terminate subprocesses: %v\n", err)
		return
	}

	selfPid := int32(os.Getpid())
	for _, proc := range procs {
		ppid, err := proc.Ppid()
		if err != nil {
			continue
		}
		if ppid == selfPid {
			proc.Terminate()
		}
	}
}
