// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package control writes and reads control messages describing the state of
// a test run.
//
// Control messages are JSON-marshaled and used for communication from the
// runner to whatever harness aggregates results. A typical sequence is:
//
//	RunStart (run started)
//		RunLog (run logged a message)
//		TestStart (first subtest started)
//			TestLog (first subtest logged a message)
//		TestEnd (first subtest ended)
//		TestStart (second subtest started)
//			TestError (second subtest encountered an error)
//		TestEnd (second subtest ended)
//	RunEnd (run ended)
//
// Messages of different types are unmarshaled into a single messageUnion
// struct. To make the type inferable, each message struct has a Time field
// with a message-type-prefixed JSON name (e.g. "runStartTime"), and all
// other fields are similarly namespaced.
package control

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"go.chromium.org/igt/internal/errors"
)

// Msg is the interface implemented by all control messages.
type Msg interface {
	isMsg()
}

// RunStart describes the start of a run, consisting of one or more subtest
// invocations.
type RunStart struct {
	// Time is the time at which the run started.
	Time time.Time `json:"runStartTime"`
	// TestNames contains the display names of the cases to run, in
	// execution order.
	TestNames []string `json:"runStartTestNames"`
}

func (*RunStart) isMsg() {}

// RunLog contains an informative, high-level logging message produced by a
// run.
type RunLog struct {
	// Time is the time at which the message was logged.
	Time time.Time `json:"runLogTime"`
	// Text is the actual message.
	Text string `json:"runLogText"`
}

func (*RunLog) isMsg() {}

// RunError describes a fatal, high-level error encountered during the run.
// It may be encountered at any time (including before RunStart) and
// indicates that the run has been aborted.
type RunError struct {
	// Time is the time at which the error occurred.
	Time time.Time `json:"runErrorTime"`
	// Reason describes the error that occurred.
	Reason string `json:"runErrorReason"`
	// Status is the exit status code of the runner.
	Status int `json:"runErrorStatus"`
}

func (*RunError) isMsg() {}

// RunEnd describes the completion of a run.
type RunEnd struct {
	// Time is the time at which the run ended.
	Time time.Time `json:"runEndTime"`
	// OutDir is the directory under which result files were written.
	OutDir string `json:"runEndOutDir"`
}

func (*RunEnd) isMsg() {}

// TestStart describes the start of an individual case.
type TestStart struct {
	// Time is the time at which the case started.
	Time time.Time `json:"testStartTime"`
	// Name is the display name of the case.
	Name string `json:"testStartName"`
	// Desc describes what the case checks.
	Desc string `json:"testStartDesc"`
}

func (*TestStart) isMsg() {}

// TestLog contains an informative logging message produced by a case.
type TestLog struct {
	// Time is the time at which the message was logged.
	Time time.Time `json:"testLogTime"`
	// Text is the actual message.
	Text string `json:"testLogText"`
}

func (*TestLog) isMsg() {}

// TestError contains an error produced by a case.
type TestError struct {
	// Time is the time at which the error occurred.
	Time time.Time `json:"testErrorTime"`
	// Reason describes the error that occurred.
	Reason string `json:"testErrorReason"`
}

func (*TestError) isMsg() {}

// TestEnd describes the end of an individual case.
type TestEnd struct {
	// Time is the time at which the case ended.
	Time time.Time `json:"testEndTime"`
	// Name matches the earlier TestStart.Name.
	Name string `json:"testEndName"`
	// SkipReason contains the message accompanying a skip. If non-empty,
	// the case was skipped and counts as neither pass nor fail.
	SkipReason string `json:"testEndSkipReason"`
}

func (*TestEnd) isMsg() {}

// Heartbeat is sent periodically to assert that the runner is alive.
type Heartbeat struct {
	// Time is the time at which this message was generated.
	Time time.Time `json:"heartbeatTime"`
}

func (*Heartbeat) isMsg() {}

// messageUnion contains all message types. It aids in marshaling and
// unmarshaling heterogeneous messages.
type messageUnion struct {
	*RunStart
	*RunLog
	*RunError
	*RunEnd
	*TestStart
	*TestLog
	*TestError
	*TestEnd
	*Heartbeat
}

// MessageWriter writes control messages describing the state of a run.
// It is safe to call its methods concurrently from multiple goroutines.
type MessageWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewMessageWriter returns a new MessageWriter for writing to w.
func NewMessageWriter(w io.Writer) *MessageWriter {
	return &MessageWriter{enc: json.NewEncoder(w)}
}

// WriteMessage writes msg.
func (mw *MessageWriter) WriteMessage(msg Msg) error {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	switch v := msg.(type) {
	case *RunStart:
		return mw.enc.Encode(&messageUnion{RunStart: v})
	case *RunLog:
		return mw.enc.Encode(&messageUnion{RunLog: v})
	case *RunError:
		return mw.enc.Encode(&messageUnion{RunError: v})
	case *RunEnd:
		return mw.enc.Encode(&messageUnion{RunEnd: v})
	case *TestStart:
		return mw.enc.Encode(&messageUnion{TestStart: v})
	case *TestLog:
		return mw.enc.Encode(&messageUnion{TestLog: v})
	case *TestError:
		return mw.enc.Encode(&messageUnion{TestError: v})
	case *TestEnd:
		return mw.enc.Encode(&messageUnion{TestEnd: v})
	case *Heartbeat:
		return mw.enc.Encode(&messageUnion{Heartbeat: v})
	default:
		return errors.New("unable to encode message of unknown type")
	}
}

// MessageReader interprets a stream of control messages, e.g. in unit tests
// or an aggregating harness.
type MessageReader json.Decoder

// NewMessageReader returns a new MessageReader for reading from r.
func NewMessageReader(r io.Reader) *MessageReader {
	return (*MessageReader)(json.NewDecoder(r))
}

// More returns true if more messages are available.
func (mr *MessageReader) More() bool {
	return (*json.Decoder)(mr).More()
}

// ReadMessage reads and returns the next message.
func (mr *MessageReader) ReadMessage() (Msg, error) {
	dec := (*json.Decoder)(mr)
	var mu messageUnion
	if err := dec.Decode(&mu); err != nil {
		return nil, errors.Wrap(err, "unable to decode message")
	}
	switch {
	case mu.RunStart != nil:
		return mu.RunStart, nil
	case mu.RunLog != nil:
		return mu.RunLog, nil
	case mu.RunError != nil:
		return mu.RunError, nil
	case mu.RunEnd != nil:
		return mu.RunEnd, nil
	case mu.TestStart != nil:
		return mu.TestStart, nil
	case mu.TestLog != nil:
		return mu.TestLog, nil
	case mu.TestError != nil:
		return mu.TestError, nil
	case mu.TestEnd != nil:
		return mu.TestEnd, nil
	case mu.Heartbeat != nil:
		return mu.Heartbeat, nil
	default:
		return nil, errors.New("unable to decode message of unknown type")
	}
}
