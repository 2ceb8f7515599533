// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package logging

import (
	"context"
	"fmt"
	"time"
)

// contextKey is the key type for a Logger attached to a context.Context.
type contextKey struct{}

// AttachLogger creates a context with logger attached. Logs sent to the
// returned context via Info/Debug are consumed by logger. If a logger is
// already attached to ctx, entries are propagated to it as well.
func AttachLogger(ctx context.Context, logger Logger) context.Context {
	if parent, ok := loggerFromContext(ctx); ok {
		logger = NewMultiLogger(logger, parent)
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// loggerFromContext extracts a Logger from a context.
func loggerFromContext(ctx context.Context) (Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(Logger)
	return logger, ok
}

func log(ctx context.Context, level Level, msg string) {
	if logger, ok := loggerFromContext(ctx); ok {
		logger.Log(level, time.Now(), msg)
	}
}

// Info emits an INFO log entry to the logger attached to ctx. It is a no-op
// if no logger is attached.
func Info(ctx context.Context, args ...interface{}) {
	log(ctx, LevelInfo, fmt.Sprint(args...))
}

// Infof is similar to Info but formats its arguments using fmt.Sprintf.
func Infof(ctx context.Context, format string, args ...interface{}) {
	log(ctx, LevelInfo, fmt.Sprintf(format, args...))
}

// Debug emits a DEBUG log entry to the logger attached to ctx.
func Debug(ctx context.Context, args ...interface{}) {
	log(ctx, LevelDebug, fmt.Sprint(args...))
}

// Debugf is similar to Debug but formats its arguments using fmt.Sprintf.
func Debugf(ctx context.Context, format string, args ...interface{}) {
	log(ctx, LevelDebug, fmt.Sprintf(format, args...))
}
