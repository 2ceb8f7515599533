// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
)

func check(t *testing.T, err error, msg string, traceRegexp *regexp.Regexp) {
	t.Helper()
	if s := err.Error(); s != msg {
		t.Errorf("Wrong error message %q; want %q", s, msg)
	}
	if s := fmt.Sprintf("%v", err); s != msg {
		t.Errorf("Wrong default value %q; want %q", s, msg)
	}
	if tr := fmt.Sprintf("%+v", err); !traceRegexp.MatchString(tr) {
		t.Errorf("Wrong trace %q; should match %q", tr, traceRegexp)
	}
}

func TestNew(t *testing.T) {
	const msg = "exec failed"
	traceRegexp := regexp.MustCompile(`^exec failed
	at go\.chromium\.org/igt/internal/errors\.TestNew \(errors_test.go:\d+\)`)

	check(t, New(msg), msg, traceRegexp)
}

func TestErrorf(t *testing.T) {
	const msg = "exec failed"
	traceRegexp := regexp.MustCompile(`^exec failed
	at go\.chromium\.org/igt/internal/errors\.TestErrorf \(errors_test.go:\d+\)`)

	check(t, Errorf("exec %s", "failed"), msg, traceRegexp)
}

func TestWrap(t *testing.T) {
	const msg = "run subtest: exec failed"
	traceRegexp := regexp.MustCompile(`(?s)^run subtest
	at go\.chromium\.org/igt/internal/errors\.TestWrap \(errors_test.go:\d+\)
.*
exec failed
	at go\.chromium\.org/igt/internal/errors\.TestWrap \(errors_test.go:\d+\)`)

	check(t, Wrap(New("exec failed"), "run subtest"), msg, traceRegexp)
}

func TestWrapForeignError(t *testing.T) {
	const msg = "run subtest: exec failed"
	traceRegexp := regexp.MustCompile(`(?s)^run subtest
	at go\.chromium\.org/igt/internal/errors\.TestWrapForeignError \(errors_test.go:\d+\)
.*
exec failed
	at \?\?\?$`)

	// The standard errors package creates errors without traces.
	check(t, Wrap(errors.New("exec failed"), "run subtest"), msg, traceRegexp)
}

func TestWrapNil(t *testing.T) {
	const msg = "run subtest"
	traceRegexp := regexp.MustCompile(`^run subtest
	at go\.chromium\.org/igt/internal/errors\.TestWrapNil \(errors_test.go:\d+\)`)

	check(t, Wrap(nil, msg), msg, traceRegexp)
}

func TestUnwrap(t *testing.T) {
	cause := New("exec failed")
	err := Wrap(cause, "run subtest")
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, %v) = false; want true", err, cause)
	}
}
