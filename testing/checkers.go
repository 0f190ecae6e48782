/*
 * Copyright (C) 2017 XLAB, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package testing

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

// The ErrorCauseIs checker verifies that the obtained error, once every
// layer of context added with github.com/pkg/errors is peeled off, is the
// expected sentinel error.
//
// For example:
//
//     c.Assert(err, ErrorCauseIs, cmd.ErrTruncated)
//
var ErrorCauseIs Checker = &errorCauseIsChecker{
	&CheckerInfo{Name: "ErrorCauseIs", Params: []string{"obtained", "cause"}},
}

type errorCauseIsChecker struct {
	*CheckerInfo
}

func (checker *errorCauseIsChecker) Check(params []interface{}, names []string) (result bool, errStr string) {
	expected, ok := params[1].(error)
	if !ok || expected == nil {
		return false, "Expected value must be a non-nil error"
	}
	if params[0] == nil {
		return false, "Obtained value is nil"
	}
	obtained, ok := params[0].(error)
	if !ok {
		return false, "Obtained value must be an error"
	}

	if cause := errors.Cause(obtained); cause != expected {
		return false, fmt.Sprintf("cause '%v' is not '%v'", cause, expected)
	}
	return true, ""
}

// The LinesEqual checker compares command output line by line and reports
// the first line that differs. Both values must be strings; a missing
// trailing newline is a mismatch.
//
// For example:
//
//     c.Assert(stdout.String(), LinesEqual, "Valid GZip file.\nOS: Unix\n")
//
var LinesEqual Checker = &linesEqualChecker{
	&CheckerInfo{Name: "LinesEqual", Params: []string{"obtained", "expected"}},
}

type linesEqualChecker struct {
	*CheckerInfo
}

func (checker *linesEqualChecker) Check(params []interface{}, names []string) (result bool, errStr string) {
	obtained, ok := params[0].(string)
	if !ok {
		return false, "Obtained value must be a string"
	}
	expected, ok := params[1].(string)
	if !ok {
		return false, "Expected value must be a string"
	}

	if err := compareLines(obtained, expected); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func compareLines(obtained, expected string) error {
	obtainedLines := strings.SplitAfter(obtained, "\n")
	expectedLines := strings.SplitAfter(expected, "\n")

	n := len(expectedLines)
	if len(obtainedLines) > n {
		n = len(obtainedLines)
	}
	for i := 0; i < n; i++ {
		o, e := lineAt(obtainedLines, i), lineAt(expectedLines, i)
		if o != e {
			return fmt.Errorf("line %d: %q != %q", i+1, o, e)
		}
	}
	return nil
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
