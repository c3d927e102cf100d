// Copyright (C) 2024 the parse24 authors.
// This file is part of parse24
//
// parse24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// parse24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with parse24.  If not, see <https://www.gnu.org/licenses/>.

package ippcode

import (
	"errors"
	"fmt"
)

// Process exit codes. The values are a published contract shared with
// the automated graders of the language, do not renumber.
const (
	ExitParam     = 10 // malformed invocation directive
	ExitStatsFile = 12 // stats output destination used twice
	ExitHeader    = 21 // missing or mismatched source header
	ExitOpcode    = 22 // opcode outside the instruction table
	ExitSyntax    = 23 // any other syntax or grammar violation
	ExitInternal  = 99 // unclassified internal fault
	ExitInterrupt = 130
)

// CodedError attaches a process exit code to an error. Validation stays
// a pure function of its inputs; only the command entrypoint turns the
// code into an exit.
type CodedError struct {
	Code int
	Err  error
}

func (ce *CodedError) Error() string { return ce.Err.Error() }

func (ce *CodedError) Unwrap() error { return ce.Err }

func codedErrorf(code int, format string, a ...interface{}) error {
	return &CodedError{Code: code, Err: fmt.Errorf(format, a...)}
}

func paramErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitParam, format, a...)
}

func headerErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitHeader, format, a...)
}

func opcodeErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitOpcode, format, a...)
}

func syntaxErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitSyntax, format, a...)
}

func internalErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitInternal, format, a...)
}

// ParamErrorf builds an invocation error for collaborators outside this
// package (directive processing, CLI argument handling).
func ParamErrorf(format string, a ...interface{}) error {
	return paramErrorf(format, a...)
}

// StatsFileErrorf builds the error for a reused stats destination.
func StatsFileErrorf(format string, a ...interface{}) error {
	return codedErrorf(ExitStatsFile, format, a...)
}

// InternalErrorf builds an unclassified-fault error.
func InternalErrorf(format string, a ...interface{}) error {
	return internalErrorf(format, a...)
}

// LineError wraps an error with the source line it occurred on.
type LineError struct {
	Line int
	Err  error
}

func (le *LineError) Error() string {
	return fmt.Sprintf(":%d %s", le.Line, le.Err.Error())
}

func (le *LineError) Unwrap() error { return le.Err }

func lineErr(line int, err error) error {
	return &LineError{Line: line, Err: err}
}

// ExitCode maps any error to the process exit code it calls for.
// Errors that carry no code are unclassified internal faults.
func ExitCode(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ExitInternal
}
