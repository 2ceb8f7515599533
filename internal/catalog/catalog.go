// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package catalog holds the static descriptions of the IGT binaries the
// runner knows how to drive.
//
// Catalog data is compiled into the runner: each suite file registers its
// Suite in an init function, and the global registry is read-only once
// program initialization completes. The runner never discovers binaries at
// runtime.
package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Subtest describes one named checkpoint within an IGT binary, selectable
// via the binary's --run-subtest flag.
type Subtest struct {
	// Name is the raw upstream subtest name. It may embed the literal
	// placeholder tokens %s and %d; see the naming package.
	Name string
	// Desc describes what the subtest checks.
	Desc string
	// Rationale explains why the check matters. It is surfaced only when
	// the subtest fails.
	Rationale string
}

// Suite describes one IGT binary and its selectable subtests.
//
// A Suite with no Subtests is a whole-run suite: the binary is invoked
// without a subtest selection and its entire output is classified at once,
// using the suite-level Desc and Rationale for the failure diagnostic.
type Suite struct {
	// Name identifies the suite. It usually matches Binary, but a few
	// suites front a differently named executable (e.g. kms_bw drives
	// kms_flip).
	Name string
	// Binary is the base name of the executable, without the install
	// directory or architecture suffix.
	Binary string
	// Desc describes the binary's overall purpose.
	Desc string
	// Rationale explains why the whole-run check matters. Only meaningful
	// for whole-run suites.
	Rationale string
	// Subtests lists the selectable subtests in catalog order.
	Subtests []Subtest
}

// WholeRun reports whether s is invoked without subtest selection.
func (s *Suite) WholeRun() bool {
	return len(s.Subtests) == 0
}

var suiteNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Registry holds suites.
type Registry struct {
	suites map[string]*Suite
	order  []string // registration order, for deterministic listing
}

// NewRegistry returns a new empty suite registry.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]*Suite)}
}

// Add adds s to the registry.
func (r *Registry) Add(s *Suite) error {
	if err := validate(s); err != nil {
		return fmt.Errorf("invalid suite %q: %v", s.Name, err)
	}
	if _, ok := r.suites[s.Name]; ok {
		return fmt.Errorf("suite %q registered twice", s.Name)
	}
	r.suites[s.Name] = s
	r.order = append(r.order, s.Name)
	return nil
}

func validate(s *Suite) error {
	if !suiteNameRegexp.MatchString(s.Name) {
		return fmt.Errorf("name must match %s", suiteNameRegexp)
	}
	if s.Binary == "" {
		return fmt.Errorf("binary name is empty")
	}
	if s.WholeRun() {
		if s.Desc == "" || s.Rationale == "" {
			return fmt.Errorf("whole-run suite needs a description and rationale")
		}
		return nil
	}
	seen := make(map[string]struct{})
	for _, st := range s.Subtests {
		if st.Name == "" {
			return fmt.Errorf("subtest with empty name")
		}
		if _, ok := seen[st.Name]; ok {
			return fmt.Errorf("subtest %q listed twice", st.Name)
		}
		seen[st.Name] = struct{}{}
		if st.Desc == "" || st.Rationale == "" {
			return fmt.Errorf("subtest %q needs a description and rationale", st.Name)
		}
	}
	return nil
}

// Suites returns all registered suites in registration order.
func (r *Registry) Suites() []*Suite {
	ss := make([]*Suite, 0, len(r.order))
	for _, name := range r.order {
		ss = append(ss, r.suites[name])
	}
	return ss
}

// Lookup returns the suite registered under name, or nil.
func (r *Registry) Lookup(name string) *Suite {
	return r.suites[name]
}

// SuitesForPatterns returns registered suites whose names are matched by
// any of the given patterns, which may contain '*' wildcards. With no
// patterns, all suites are returned. Results are de-duplicated and sorted
// by suite name.
func (r *Registry) SuitesForPatterns(patterns []string) ([]*Suite, error) {
	matched := make(map[string]*Suite)
	if len(patterns) == 0 {
		matched = r.suites
	} else {
		for _, p := range patterns {
			re, err := compilePattern(p)
			if err != nil {
				return nil, err
			}
			for name, s := range r.suites {
				if re.MatchString(name) {
					matched[name] = s
				}
			}
		}
	}

	names := make([]string, 0, len(matched))
	for name := range matched {
		names = append(names, name)
	}
	sort.Strings(names)

	ss := make([]*Suite, 0, len(names))
	for _, name := range names {
		ss = append(ss, matched[name])
	}
	return ss, nil
}

// compilePattern converts a wildcard pattern to an anchored regexp.
func compilePattern(p string) (*regexp.Regexp, error) {
	for _, ch := range p {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' && ch != '*' {
			return nil, fmt.Errorf("bad pattern %q: invalid character %q", p, ch)
		}
	}
	p = strings.ReplaceAll(p, "*", ".*")
	return regexp.Compile("^" + p + "$")
}

// global is the process-wide registry populated by suite files' init
// functions.
var global = NewRegistry()

// Register adds s to the process-wide registry. It panics on invalid or
// duplicate registrations since those are programming errors in static
// catalog data.
func Register(s *Suite) {
	if err := global.Add(s); err != nil {
		panic("catalog: " + err.Error())
	}
}

// Global returns the process-wide registry.
func Global() *Registry {
	return global
}
