// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding is returned when a serialized point has a tag byte
	// that is not one of the SEC1 point formats, a length that does not
	// match the format its tag declares, or a coordinate that is not a
	// canonical encoding of a field element.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrNotOnCurve is returned when a serialized point is well formed but
	// its coordinates do not satisfy the curve equation, or when a
	// compressed x coordinate has no corresponding y coordinate.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrNotAPublicKey is returned when a valid point is not usable as a
	// public key.  The point at infinity is the only such point.
	ErrNotAPublicKey = ErrorKind("ErrNotAPublicKey")

	// ErrUnknownCurve is returned when a curve is requested by a name that
	// is not registered.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrCurveMismatch is returned when an operation is handed values that
	// belong to different curves.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to decoding, validating or converting
// an elliptic curve point.  It has full support for errors.Is and errors.As,
// so the caller can ascertain the specific reason for the error by checking
// the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
