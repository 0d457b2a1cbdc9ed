// Package coefferr implements the structured error type raised by the
// coefficient loader, in the style of the pack's builder-based error
// types: a fixed Kind, the offending file path, and a wrapped cause.
package coefferr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes a loader error. The five kinds are mutually exclusive.
type Kind string

const (
	KindCoefficientFile      Kind = "coefficient_file"
	KindCoefficientFormat    Kind = "coefficient_format"
	KindCoefficientTruncated Kind = "coefficient_truncated"
	KindCoefficientRewrite   Kind = "coefficient_rewrite"
	KindUnsupportedFamily    Kind = "unsupported_family"
)

// Error is the loader's structured error type.
type Error struct {
	Kind   Kind
	Path   string
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("coefficient loader: %s: %s", e.Kind, e.Path)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the wrapped cause, so errors.Is/errors.As reach it.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can test with errors.Is(err, coefferr.New(coefferr.KindCoefficientFile, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error of the given kind for the given path.
func New(kind Kind, path string) *Error {
	return &Error{Kind: kind, Path: path}
}

// WithDetail sets the human-readable detail message.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithCause wraps cause with a stack trace (via github.com/pkg/errors)
// and attaches it to e.
func (e *Error) WithCause(cause error) *Error {
	if cause != nil {
		e.Cause = errors.WithStack(cause)
	}
	return e
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
