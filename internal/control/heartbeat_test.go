// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package control

import (
	"io"
	"os"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
)

// useFakeClock replaces the package clock with a fake one until restore is
// called.
func useFakeClock() (fclk *fakeclock.FakeClock, restore func()) {
	fclk = fakeclock.NewFakeClock(time.Unix(0, 0))
	orig := clk
	clk = fclk
	return fclk, func() { clk = orig }
}

func TestHeartbeatWriter(t *testing.T) {
	fclk, restore := useFakeClock()
	defer restore()

	// os.Pipe rather than io.Pipe: its internal buffer is essential to
	// catch possible WriteMessage races.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal("os.Pipe failed: ", err)
	}
	defer r.Close()

	mr := NewMessageReader(r)

	func() {
		defer w.Close()

		mw := NewMessageWriter(w)
		const interval = time.Second
		hbw := NewHeartbeatWriter(mw, interval)
		// No deferred hbw.Stop() here; it deadlocks if the buffer is full.

		// One heartbeat is written immediately, then one per tick.
		for i := 0; i < 3; i++ {
			msg, err := mr.ReadMessage()
			if err != nil {
				t.Fatal("ReadMessage failed: ", err)
			}
			if _, ok := msg.(*Heartbeat); !ok {
				t.Fatalf("ReadMessage returned %T; want *control.Heartbeat", msg)
			}
			if i < 2 {
				fclk.WaitForWatcherAndIncrement(interval)
			}
		}

		go func() {
			hbw.Stop()
			mw.WriteMessage(&RunEnd{})
		}()

		for {
			msg, err := mr.ReadMessage()
			if err != nil {
				t.Fatal("ReadMessage failed: ", err)
			}
			if _, ok := msg.(*RunEnd); ok {
				break
			} else if _, ok := msg.(*Heartbeat); !ok {
				t.Fatalf("ReadMessage returned %T; want *control.Heartbeat", msg)
			}
		}
	}()

	// No heartbeat may appear after Stop.
	if msg, err := mr.ReadMessage(); err == nil {
		t.Fatalf("Heartbeat sent after Stop: %v", msg)
	}
}

func TestHeartbeatWriterNonPositiveInterval(t *testing.T) {
	r, w := io.Pipe()
	defer r.Close()

	mw := NewMessageWriter(w)
	hbw := NewHeartbeatWriter(mw, 0)
	defer hbw.Stop()

	// Treat a write to the unread pipe as a test failure: with a
	// non-positive interval nothing may be written.
	done := make(chan struct{})
	go func() {
		defer close(done)
		var buf [1]byte
		if n, err := r.Read(buf[:]); err == nil {
			t.Errorf("Read unexpectedly returned %d bytes", n)
		}
	}()

	hbw.Stop()
	w.Close()
	<-done
}
