// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail.
	ErrInternal ErrorCode = iota

	// ErrScriptTooBig is returned if a script is larger than MaxScriptSize.
	ErrScriptTooBig

	// ErrElementTooBig is returned if the size of an element to be pushed to
	// the stack is over MaxScriptElementSize.
	ErrElementTooBig

	// ErrMalformedPush is returned when a data push opcode tries to push more
	// bytes than are left in the script.
	ErrMalformedPush

	// ErrUnsupportedAddress is returned when a script class has no address
	// form.
	ErrUnsupportedAddress
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:           "ErrInternal",
	ErrScriptTooBig:       "ErrScriptTooBig",
	ErrElementTooBig:      "ErrElementTooBig",
	ErrMalformedPush:      "ErrMalformedPush",
	ErrUnsupportedAddress: "ErrUnsupportedAddress",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
