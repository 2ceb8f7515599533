// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package control

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

// clk is replaced in unit tests to use fake clocks.
var clk = clock.NewClock()

// HeartbeatWriter writes heartbeat messages periodically to a
// MessageWriter so that a consumer can tell a long-running invocation from
// a dead runner.
type HeartbeatWriter struct {
	mu     sync.Mutex
	closed bool
	fin    chan struct{} // sending a value stops the background goroutine
}

// NewHeartbeatWriter constructs a new HeartbeatWriter for mw. d is the
// interval at which heartbeat messages are written; if it is non-positive,
// no heartbeat message is written. In any case Stop must be called after
// use to stop the background goroutine.
func NewHeartbeatWriter(mw *MessageWriter, d time.Duration) *HeartbeatWriter {
	fin := make(chan struct{})

	go func() {
		defer close(fin)

		if d <= 0 {
			<-fin
			return
		}

		tick := clk.NewTicker(d)
		defer tick.Stop()

		mw.WriteMessage(&Heartbeat{Time: clk.Now()})
		for {
			select {
			case <-tick.C():
				mw.WriteMessage(&Heartbeat{Time: clk.Now()})
			case <-fin:
				return
			}
		}
	}()

	return &HeartbeatWriter{fin: fin}
}

// Stop stops the background goroutine writing heartbeat messages. Once it
// returns, no further heartbeat is written. It may block if the writer is
// blocking. It is safe to call Stop multiple times.
func (w *HeartbeatWriter) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	// The channel capacity is 0, so the background goroutine can never
	// write another heartbeat once this send finishes.
	w.fin <- struct{}{}
	w.closed = true
}
