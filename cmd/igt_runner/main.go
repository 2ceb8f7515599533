// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package main implements the igt_runner executable, used to list and run
// pre-built IGT display validation binaries.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"go.chromium.org/igt/internal/command"
	"go.chromium.org/igt/internal/logging"
	_ "go.chromium.org/igt/internal/suites"
)

// Version is the version info of this command. It is filled in at build time.
var Version = "<unknown>"

// doMain implements the main body of the program. It's a separate function
// so that its deferred functions run before os.Exit makes the program exit
// immediately.
func doMain() int {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(newListCmd(os.Stdout), "")
	subcommands.Register(newRunCmd(), "")

	version := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "use verbose logging")
	logTime := flag.Bool("logtime", true, "include date/time headers in logs")
	flag.Parse()

	if *version {
		fmt.Printf("igt_runner version %s\n", Version)
		return 0
	}

	level := logging.LevelInfo
	if *verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewWriterLogger(level, *logTime, os.Stderr)
	ctx := logging.AttachLogger(context.Background(), logger)

	command.InstallSignalHandler(os.Stderr, func(os.Signal) {})

	return int(subcommands.Execute(ctx))
}

func main() {
	os.Exit(doMain())
}
