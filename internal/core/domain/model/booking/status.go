package booking

import (
	"fmt"

	"shiftbooker/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking attempt.
// It implements a state machine with defined transitions so attempts follow
// the retry workflow correctly.
//
// State transitions:
//
//	Pending ──┬──> Succeeded
//	          │
//	          └──> FailedRetryable ──┬──> Pending (retry scheduled)
//	                                 │
//	Pending ─────────────────────────┴──> FailedTerminal
//
// Succeeded and FailedTerminal are final states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the attempt is waiting for, or in the
	// middle of, a try against the booking capability.
	Pending

	// Succeeded indicates the booking was confirmed. Final state.
	Succeeded

	// FailedRetryable indicates the last try failed with a transient error
	// and the attempt may be scheduled for another try.
	FailedRetryable

	// FailedTerminal indicates the attempt is over: either the error was a
	// permanent rejection or the retry budget is exhausted. Final state.
	FailedTerminal
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Succeeded:       "Succeeded",
		FailedRetryable: "FailedRetryable",
		FailedTerminal:  "FailedTerminal",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		Succeeded:       "Succeeded",
		FailedRetryable: "FailedRetryable",
		FailedTerminal:  "FailedTerminal",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final.
// Terminal attempts are reported exactly once and never tried again.
func (s Status) IsTerminal() bool {
	return s == Succeeded || s == FailedTerminal
}

// Succeed transitions the status to Succeeded.
//
// Valid transitions:
//   - Pending -> Succeeded
func (s Status) Succeed() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to succeed from", s.String()),
		)
	}

	return Succeeded, nil
}

// FailRetryable transitions the status to FailedRetryable.
//
// Valid transitions:
//   - Pending -> FailedRetryable
func (s Status) FailRetryable() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail retryably from", s.String()),
		)
	}

	return FailedRetryable, nil
}

// Retry transitions the status back to Pending for another try.
//
// Valid transitions:
//   - FailedRetryable -> Pending
func (s Status) Retry() (Status, error) {
	if s != FailedRetryable {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to retry from", s.String()),
		)
	}

	return Pending, nil
}

// FailTerminal transitions the status to FailedTerminal.
//
// Valid transitions:
//   - Pending -> FailedTerminal (permanent rejection mid-try, or abandoned at shutdown)
//   - FailedRetryable -> FailedTerminal (retry budget exhausted)
func (s Status) FailTerminal() (Status, error) {
	if s != Pending && s != FailedRetryable {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail terminally from", s.String()),
		)
	}

	return FailedTerminal, nil
}
