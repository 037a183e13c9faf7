// Package trackerr defines the closed set of errors surfaced by operation tracking.
package trackerr

import (
	"errors"
	"fmt"
)

// Kind classifies a tracking failure.
type Kind uint8

const (
	// KindUnknown is reported by KindOf for errors that did not originate here.
	KindUnknown Kind = iota
	// KindValidation marks malformed input. Never retried.
	KindValidation
	// KindFetch marks a transport or connectivity failure. Retried by polling helpers.
	KindFetch
	// KindTimeout marks an exhausted retry budget.
	KindTimeout
	// KindCanceled marks a caller cancellation or deadline.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindFetch:
		return "fetch"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the tracking packages.
type Error struct {
	Kind Kind
	// Op names the failing operation, e.g. "resolve".
	Op string
	// Attempts is set for KindTimeout and counts the attempts made.
	Attempts int
	Err      error
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrFetch      = &Error{Kind: KindFetch}
	ErrTimeout    = &Error{Kind: KindTimeout}
	ErrCanceled   = &Error{Kind: KindCanceled}
)

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Kind == KindTimeout {
		msg = fmt.Sprintf("%s after %d attempts", msg, e.Attempts)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Validationf builds a KindValidation error.
func Validationf(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// Fetch wraps a transport failure.
func Fetch(op string, err error) *Error {
	return &Error{Kind: KindFetch, Op: op, Err: err}
}

// Timeout reports an exhausted retry budget. err is the last failure seen, if any.
func Timeout(op string, attempts int, err error) *Error {
	return &Error{Kind: KindTimeout, Op: op, Attempts: attempts, Err: err}
}

// Canceled wraps a context error.
func Canceled(op string, err error) *Error {
	return &Error{Kind: KindCanceled, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Retryable reports whether polling helpers should try again after err.
func Retryable(err error) bool {
	return KindOf(err) == KindFetch
}
