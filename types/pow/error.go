// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"
)

// ErrorCode identifies a kind of proof-of-work error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrBelowMinimumWork indicates the difficulty bits decode to a target
	// that is negative, zero, overflowed or easier than the network limit.
	ErrBelowMinimumWork ErrorCode = iota

	// ErrHashExceedsTarget indicates the proof-of-work hash is numerically
	// larger than the target.
	ErrHashExceedsTarget
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrBelowMinimumWork:  "ErrBelowMinimumWork",
	ErrHashExceedsTarget: "ErrHashExceedsTarget",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a proof-of-work rule violation.  The caller can use
// type assertions to determine if a failure was specifically due to a rule
// violation and access the ErrorCode field to ascertain the specific reason.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates an RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is a RuleError carrying the code. Wrapped
// errors are unwrapped.
func IsErrorCode(err error, c ErrorCode) bool {
	for err != nil {
		if rerr, ok := err.(RuleError); ok {
			return rerr.ErrorCode == c
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = cause.Cause()
	}
	return false
}
