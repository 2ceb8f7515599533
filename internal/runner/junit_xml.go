// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package runner

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"
)

// JUnitXMLFilename is the file name used by WriteJUnitXMLResults.
const JUnitXMLFilename = "results.xml"

// testSuites is the top level XML element of a JUnit result.
type testSuites struct {
	XMLName   xml.Name
	TestSuite testSuite `xml:"testsuite"`
}

// testSuite is an XML element in a JUnit result. Errors and failures are
// not distinguished here; both are reported as failures.
type testSuite struct {
	TestCase []*testCase `xml:"testcase"`

	Tests    int `xml:"tests,attr"`
	Failures int `xml:"failures,attr"`
	Skipped  int `xml:"skipped,attr"`
}

// testCase is an element in a JUnit XML test result.
type testCase struct {
	Name      string `xml:"name,attr"`
	Status    string `xml:"status,attr"`         // run or notrun
	Result    string `xml:"result,attr"`         // more detailed result
	Timestamp string `xml:"timestamp,attr"`      // start time, in ISO8601
	Time      string `xml:"time,attr,omitempty"` // duration, in seconds (with a decimal point)

	Failure []*failure `xml:"failure,omitempty"`
	Skipped *skipped   `xml:"skipped,omitempty"`
}

// failure represents a test case failure.
type failure struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Details string `xml:",cdata"`
}

// skipped represents a skipped test case.
type skipped struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
}

// WriteJUnitXMLResults saves results to path in the JUnit XML format.
func WriteJUnitXMLResults(path string, results []*Result) error {
	suites := testSuites{
		XMLName: xml.Name{Local: "testsuites"},
		TestSuite: testSuite{
			Tests: len(results),
		},
	}
	suite := &suites.TestSuite
	var skips int
	var failures int
	for _, r := range results {
		tc := testCase{
			Name:      r.Name,
			Timestamp: r.Start.UTC().Format(time.RFC3339),
			// Decimal point is needed for distinguishing it from
			// nanoseconds notation, e.g. "1.0" for one second.
			Time: fmt.Sprintf("%.1f", r.End.Sub(r.Start).Seconds()),
		}
		if r.SkipReason != "" {
			tc.Status = "notrun"
			tc.Result = "skipped"
			tc.Skipped = &skipped{
				Message: r.SkipReason,
			}
			skips++
		} else {
			tc.Status = "run"
			tc.Result = "completed"
			for _, e := range r.Errors {
				msg, _, _ := strings.Cut(e.Reason, "\n")
				tc.Failure = append(tc.Failure, &failure{
					Message: msg,
					Details: e.Reason,
				})
			}
			if len(r.Errors) > 0 {
				failures++
			}
		}
		suite.TestCase = append(suite.TestCase, &tc)
	}
	suite.Skipped = skips
	suite.Failures = failures

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
