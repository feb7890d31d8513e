// Package fault is the single domain error type shared by the core packages.
// Every failure carries a Kind that the HTTP boundary maps to a status code.
package fault

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure for the caller.
type Kind int

const (
	// Validation is malformed, oversized or out-of-range input. The caller's fault.
	Validation Kind = iota

	// Conversion is a format-conversion failure, e.g. unparsable GenBank content.
	Conversion

	// Manipulation is a sequence-manipulation failure, e.g. a missing sequence id.
	Manipulation

	// Tool is an external dependency failure: nonzero exit, timeout, or absent binary.
	Tool

	// Internal is anything unexpected. Reported opaquely at the boundary.
	Internal
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conversion:
		return "conversion"
	case Manipulation:
		return "manipulation"
	case Tool:
		return "tool"
	}
	return "internal"
}

// Error is a categorized failure with the operation that detected it.
type Error struct {
	// Kind of the failure, used for status mapping at the boundary
	Kind Kind

	// Op is the operation that detected the failure, ex: "reverse_complement"
	Op string

	// Msg is the human-readable message
	Msg string

	// Err is the wrapped cause, if any
	Err error
}

// Error returns the message, with the cause appended when one was wrapped.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with a formatted message.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap adds kind and operation context to a lower-level error. An error that
// is already an *Error is returned unchanged so failures are wrapped at most
// once and never lose their original kind.
func Wrap(kind Kind, op, msg string, err error) error {
	if err == nil {
		return nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		return err
	}

	return &Error{
		Kind: kind,
		Op:   op,
		Msg:  msg,
		Err:  err,
	}
}

// KindOf returns the kind of an error, or Internal for errors that did not
// originate in the core.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// IsKind reports whether the error carries the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}
