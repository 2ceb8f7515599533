// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package result

import "fmt"

// Reporter receives the harness-visible outcome of one invocation. Exactly
// one of its methods is called per invocation.
type Reporter interface {
	// Pass signals success. No message accompanies it.
	Pass()
	// Fail signals failure with a diagnostic message.
	Fail(msg string)
	// Skip signals that the checks did not run. A skip counts as neither
	// pass nor fail.
	Skip(msg string)
}

// Report converts a classified status into a call on r. log is the raw
// captured output; desc and rationale are the catalog's human-authored
// description and justification for the checks, surfaced on failure so a
// reader understands intent without consulting the binary's source.
func Report(r Reporter, st Status, log, desc, rationale string) {
	switch st {
	case Pass:
		r.Pass()
	case Fail:
		r.Fail(failureMessage(log, desc, rationale))
	case Skip:
		r.Skip(log)
	default:
		r.Fail("Could not determine test result.\n" + log)
	}
}

// failureMessage composes the diagnostic attached to an explicit failure.
func failureMessage(log, desc, rationale string) string {
	return fmt.Sprintf("%s\nWhat the test is doing: %s\nWhy the test should be fixed: %s\n", log, desc, rationale)
}
