// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package harness invokes pre-built IGT test binaries and captures their
// output.
//
// Binaries are installed at a fixed path template,
// <bindir>/<arch>/<name><suffix>, and are expected to write human-readable
// progress and result lines to stdout. The harness does not build,
// validate or manage the binaries; a missing binary surfaces as an
// invocation error when the process fails to start.
package harness

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"

	"go.chromium.org/igt/internal/errors"
	"go.chromium.org/igt/internal/logging"
	"go.chromium.org/igt/internal/shutil"
)

const (
	// DefaultBinDir is the directory where IGT binaries are installed.
	DefaultBinDir = "/data/igt_tests"
	// DefaultArch is the architecture subdirectory under BinDir.
	DefaultArch = "x86_64"
	// DefaultSuffix is appended to every binary's base name.
	DefaultSuffix = "64"

	// subtestFlag selects a single subtest when passed to a binary.
	subtestFlag = "--run-subtest"
)

// Config describes where IGT binaries are installed. Zero-value fields fall
// back to the defaults above.
type Config struct {
	BinDir string
	Arch   string
	Suffix string
}

func (c Config) withDefaults() Config {
	if c.BinDir == "" {
		c.BinDir = DefaultBinDir
	}
	if c.Arch == "" {
		c.Arch = DefaultArch
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	return c
}

// Binary is the execution context for one IGT binary: the resolved path,
// constructed once per suite and injected into each case. It is stateless
// across invocations; concurrent calls each own their child process and
// output buffer.
type Binary struct {
	path string
}

// New resolves the path of the named binary per cfg. name is the base name
// from the catalog, e.g. "kms_vblank".
func New(cfg Config, name string) (*Binary, error) {
	if name == "" {
		return nil, errors.New("binary name is empty")
	}
	cfg = cfg.withDefaults()
	return &Binary{path: filepath.Join(cfg.BinDir, cfg.Arch, name+cfg.Suffix)}, nil
}

// Path returns the resolved path of the binary.
func (b *Binary) Path() string {
	return b.path
}

// Run invokes the binary with no subtest selection and returns its captured
// output.
func (b *Binary) Run(ctx context.Context) (string, error) {
	return b.run(ctx)
}

// RunSubtest invokes the binary with the named subtest selected and returns
// its captured output.
func (b *Binary) RunSubtest(ctx context.Context, subtest string) (string, error) {
	return b.run(ctx, subtestFlag, subtest)
}

// run starts the binary, drains its combined output to end-of-stream and
// returns the captured text, which may be empty. An error is returned only
// when the process could not be started; it is distinct from any test
// failure, and no output accompanies it.
//
// There is no timeout: a child that never exits or never closes its output
// streams blocks indefinitely.
func (b *Binary) run(ctx context.Context, args ...string) (string, error) {
	logging.Debug(ctx, "Running ", shutil.EscapeSlice(append([]string{b.path}, args...)))

	var buf bytes.Buffer
	cmd := exec.Command(b.path, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Start(); err != nil {
		return "", errors.Wrapf(err, "failed to run %s", b.path)
	}
	// The outcome is a pure function of the output text. The exit status
	// carries no signal here, so Wait's error is deliberately dropped.
	cmd.Wait()
	return buf.String(), nil
}
