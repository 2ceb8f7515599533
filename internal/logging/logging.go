// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package logging provides leveled loggers consumed via context.Context.
//
// The runner attaches a Logger to its context with AttachLogger; packages
// below it report progress with Info/Debug without holding a logger
// reference themselves.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level indicates the importance of a log entry. A larger value means the
// entry is more important.
type Level int

const (
	// LevelDebug represents the DEBUG level.
	LevelDebug Level = iota
	// LevelInfo represents the INFO level.
	LevelInfo
)

// Logger is the interface for log consumers.
type Logger interface {
	// Log gets called for every log entry.
	Log(level Level, ts time.Time, msg string)
}

// MultiLogger is a Logger that copies entries to multiple underlying
// loggers. Loggers can be added and removed at any time.
type MultiLogger struct {
	mu      sync.Mutex
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger with an initial set of loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log copies an entry to the current underlying loggers.
func (ml *MultiLogger) Log(level Level, ts time.Time, msg string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	for _, l := range ml.loggers {
		l.Log(level, ts, msg)
	}
}

// AddLogger adds a logger to the set of underlying loggers.
func (ml *MultiLogger) AddLogger(logger Logger) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.loggers = append(ml.loggers, logger)
}

// RemoveLogger removes a logger from the set of underlying loggers.
func (ml *MultiLogger) RemoveLogger(logger Logger) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	j := 0
	for _, l := range ml.loggers {
		if l == logger {
			continue
		}
		ml.loggers[j] = l
		j++
	}
	ml.loggers = ml.loggers[:j]
}

// WriterLogger is a Logger that writes entries at or above a minimum level
// to an io.Writer, optionally prefixed with a timestamp.
//
// All writes are synchronized.
type WriterLogger struct {
	level     Level
	timestamp bool
	mu        sync.Mutex
	w         io.Writer
}

// NewWriterLogger creates a WriterLogger writing to w. level is the minimum
// level of entries to write. If timestamp is true, a UTC timestamp is
// prepended to each entry.
func NewWriterLogger(level Level, timestamp bool, w io.Writer) *WriterLogger {
	return &WriterLogger{level: level, timestamp: timestamp, w: w}
}

// Log writes an entry to the underlying io.Writer.
func (l *WriterLogger) Log(level Level, ts time.Time, msg string) {
	if level < l.level {
		return
	}
	if l.timestamp {
		msg = ts.UTC().Format("2006-01-02T15:04:05.000000Z ") + msg
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, msg)
}

// FuncLogger is a Logger that calls a function for every entry.
//
// All calls to the underlying function are synchronized.
type FuncLogger struct {
	mu sync.Mutex
	f  func(level Level, ts time.Time, msg string)
}

// NewFuncLogger creates a FuncLogger from a function.
func NewFuncLogger(f func(level Level, ts time.Time, msg string)) *FuncLogger {
	return &FuncLogger{f: f}
}

// Log consumes an entry as a function call.
func (l *FuncLogger) Log(level Level, ts time.Time, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.f(level, ts, msg)
}
