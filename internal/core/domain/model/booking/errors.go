package booking

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies booking failures for outcome records and retry
// decisions.
type ErrorKind string

const (
	// ErrorKindTransport covers network-level failures reaching the booking
	// capability. Retryable.
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindTimeout covers tries that exceeded their deadline. Retryable.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindRejected covers explicit rejections, such as the shift no
	// longer being available. Terminal.
	ErrorKindRejected ErrorKind = "rejected"

	// ErrorKindUnauthorized covers authorization failures against the
	// booking capability. Terminal, since retrying with the same
	// credentials cannot succeed.
	ErrorKindUnauthorized ErrorKind = "unauthorized"

	// ErrorKindShutdown marks attempts abandoned because the process was
	// shutting down. Terminal.
	ErrorKindShutdown ErrorKind = "shutdown"
)

// Error is the failure type surfaced by the booking capability. Whether an
// attempt is retried is a property of the error, not of the caller: transport
// and timeout failures are retryable, rejections and authorization failures
// are not.
type Error struct {
	Kind      ErrorKind
	retryable bool
	cause     error
}

// NewTransportError wraps a network-level failure as a retryable booking error.
func NewTransportError(cause error) *Error {
	return &Error{Kind: ErrorKindTransport, retryable: true, cause: cause}
}

// NewTimeoutError wraps a deadline failure as a retryable booking error.
func NewTimeoutError(cause error) *Error {
	return &Error{Kind: ErrorKindTimeout, retryable: true, cause: cause}
}

// NewRejectedError creates a terminal error for an explicit booking rejection.
func NewRejectedError(reason string) *Error {
	return &Error{Kind: ErrorKindRejected, cause: errors.New(reason)}
}

// NewUnauthorizedError creates a terminal error for an authorization rejection.
func NewUnauthorizedError(reason string) *Error {
	return &Error{Kind: ErrorKindUnauthorized, cause: errors.New(reason)}
}

// NewShutdownError creates a terminal error for an attempt abandoned during
// shutdown.
func NewShutdownError() *Error {
	return &Error{Kind: ErrorKindShutdown, cause: errors.New("attempt abandoned: process shutting down")}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("booking failed (%s): %s", e.Kind, e.cause)
	}
	return fmt.Sprintf("booking failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether another try may succeed.
func (e *Error) Retryable() bool {
	return e.retryable
}

// IsRetryable classifies an arbitrary error from the booking capability.
// Classified booking errors answer for themselves; context cancellation means
// shutdown and is never retried; everything else is treated as
// transport-class and retried within the attempt's budget.
func IsRetryable(err error) bool {
	var bErr *Error
	if errors.As(err, &bErr) {
		return bErr.Retryable()
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// KindOf maps an arbitrary error from the booking capability to an ErrorKind
// for outcome records.
func KindOf(err error) ErrorKind {
	var bErr *Error
	if errors.As(err, &bErr) {
		return bErr.Kind
	}
	if errors.Is(err, context.Canceled) {
		return ErrorKindShutdown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	return ErrorKindTransport
}
