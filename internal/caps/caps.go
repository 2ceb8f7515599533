// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package caps reads device capability files that disable individual test
// cases.
//
// The same runner image is shared across device SKUs, but not every SKU can
// run every check (e.g. kms_bw needs a second display). Capability files
// are layered YAML files installed on the device; each lists cases to
// disable together with a human-readable reason. Disabled cases are
// reported as skipped without invoking the binary.
//
// Files within a directory are applied in lexicographic order, so board
// overlays conventionally use a numeric prefix ("10-baseboard.yaml",
// "20-board.yaml") to control layering. A later file may re-enable a case
// disabled by an earlier one.
package caps

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"go.chromium.org/igt/internal/errors"
)

// fileRegexp matches YAML base filenames containing capability rules.
var fileRegexp = regexp.MustCompile(`^[0-9]+-.*\.yaml$`)

// Rule disables or re-enables the cases matched by a pattern.
type Rule struct {
	// Pattern matches full case names ("<suite>.<subtest>" or just
	// "<suite>" for whole-run cases) and may contain '*' wildcards.
	Pattern string `yaml:"pattern"`
	// Reason explains why the cases cannot run on this device. Required
	// for disable rules; it becomes the reported skip message.
	Reason string `yaml:"reason,omitempty"`
	// Enable re-enables previously disabled cases instead.
	Enable bool `yaml:"enable,omitempty"`

	re *regexp.Regexp
}

// capsFile is the on-disk schema of one capability file.
type capsFile struct {
	Disable []Rule `yaml:"disable"`
}

// List holds the merged rules from one or more capability files.
type List struct {
	rules []Rule // in application order
}

// Disabled returns the reason the named case must not run, if any rule
// disables it. Rules are checked in order and the last match wins.
func (l *List) Disabled(name string) (reason string, ok bool) {
	for _, r := range l.rules {
		if r.re.MatchString(name) {
			if r.Enable {
				reason, ok = "", false
			} else {
				reason, ok = r.Reason, true
			}
		}
	}
	return reason, ok
}

// Empty reports whether the list contains no rules.
func (l *List) Empty() bool {
	return len(l.rules) == 0
}

// ReadFile reads capability rules from a single YAML file.
func ReadFile(path string) (*List, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f capsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(err, "failed parsing %s", path)
	}

	l := &List{}
	for _, r := range f.Disable {
		if r.Pattern == "" {
			return nil, errors.Errorf("%s: rule with empty pattern", path)
		}
		if !r.Enable && r.Reason == "" {
			return nil, errors.Errorf("%s: disable rule %q needs a reason", path, r.Pattern)
		}
		re, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: rule %q", path, r.Pattern)
		}
		r.re = re
		l.rules = append(l.rules, r)
	}
	return l, nil
}

// ReadDir reads and merges all capability files within dir, in
// lexicographic filename order. Files not matching the "<NN>-<name>.yaml"
// convention are ignored. A missing directory yields an empty list.
func ReadDir(dir string) (*List, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return &List{}, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && fileRegexp.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	merged := &List{}
	for _, name := range names {
		l, err := ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		merged.rules = append(merged.rules, l.rules...)
	}
	return merged, nil
}

// compilePattern converts a case-name wildcard pattern to an anchored
// regexp.
func compilePattern(p string) (*regexp.Regexp, error) {
	if ok, err := regexp.MatchString(`^[\w.*-]+$`, p); err != nil || !ok {
		return nil, fmt.Errorf("invalid pattern %q", p)
	}
	p = strings.ReplaceAll(p, ".", `\.`)
	p = strings.ReplaceAll(p, "*", ".*")
	return regexp.Compile("^" + p + "$")
}
