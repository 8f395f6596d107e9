// Package diag provides the classified errors reported by the engine.
//
// Every failure carries the operation that detected it and the offending
// literal text or symbol, so callers can surface actionable messages
// without string matching.
package diag

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a failure.
type Kind int

const (
	// KindConfiguration covers invalid or duplicate dimension declarations
	// and duplicate or colliding unit definitions.
	KindConfiguration Kind = iota + 1
	// KindParse covers malformed expression text and unresolvable factors.
	KindParse
	// KindTypeMismatch covers incompatible dimensions in an operation.
	KindTypeMismatch
	// KindLookup covers undefined unit symbols.
	KindLookup
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindParse:
		return "parse"
	case KindTypeMismatch:
		return "type mismatch"
	case KindLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

// Error is a classified failure.
type Error struct {
	// Kind is the failure classification.
	Kind Kind
	// Op is the operation or call site that detected the failure.
	Op string
	// Text is the offending literal text or symbol name, if any.
	Text string
	// Message is the human-readable description.
	Message string
	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op + ": " + e.Message
	if e.Text != "" {
		msg += " (" + strconv.Quote(e.Text) + ")"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// Newf builds a classified error with a formatted message.
func Newf(kind Kind, op, text, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Text: text, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a classified error around a cause.
func Wrap(kind Kind, op, text string, err error) *Error {
	return &Error{Kind: kind, Op: op, Text: text, Message: kind.String() + " failure", Err: err}
}

// IsKind reports whether err or any error it wraps is a diag error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Kind == kind {
			return true
		}

		err = de.Err
		if err == nil {
			return false
		}
	}

	return false
}
