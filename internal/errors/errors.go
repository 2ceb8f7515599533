// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package errors provides basic utilities to construct errors.
//
// Use this package rather than the standard library (errors.New, fmt.Errorf)
// so that failures carry the location where they were constructed and nicely
// formatted cause chains.
//
//	errors.New("binary not found")
//	errors.Wrapf(err, "failed to run %s", path)
//
// A full chain with stack traces can be printed with the "%+v" verb.
package errors

import (
	"fmt"
	"io"
	"strings"
)

// chained is the error implementation used by this package.
type chained struct {
	msg   string // message to be prepended to cause
	tr    trace  // location where this error was created
	cause error  // original error if non-nil
}

// Error implements the error interface.
func (e *chained) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

// Unwrap supports the standard errors.Is/As helpers.
func (e *chained) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. The "%+v" verb prints the whole chain
// with stack traces.
func (e *chained) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		io.WriteString(s, formatChain(e))
	} else {
		io.WriteString(s, e.Error())
	}
}

// formatChain formats an error chain.
func formatChain(err error) string {
	var parts []string
	for err != nil {
		if e, ok := err.(*chained); ok {
			parts = append(parts, fmt.Sprintf("%s\n%v", e.msg, e.tr))
			err = e.cause
		} else {
			parts = append(parts, fmt.Sprintf("%s\n\tat ???", err.Error()))
			err = nil
		}
	}
	return strings.Join(parts, "\n")
}

// New creates a new error with the given message.
// Unlike the standard errors.New, it records the location where it was called.
func New(msg string) error {
	return &chained{msg, newTrace(1), nil}
}

// Errorf creates a new error with a formatted message.
func Errorf(format string, args ...interface{}) error {
	return &chained{fmt.Sprintf(format, args...), newTrace(1), nil}
}

// Wrap creates a new error with the given message, wrapping another error.
// If cause is nil, this is equivalent to New.
func Wrap(cause error, msg string) error {
	return &chained{msg, newTrace(1), cause}
}

// Wrapf creates a new error with a formatted message, wrapping another error.
// If cause is nil, this is equivalent to Errorf.
func Wrapf(cause error, format string, args ...interface{}) error {
	return &chained{fmt.Sprintf(format, args...), newTrace(1), cause}
}
