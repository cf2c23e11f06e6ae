package booking

import (
	"errors"
	"fmt"
	"time"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"
)

// ErrAttemptIsNotConstructed is returned when an Attempt instance was not
// created through the NewAttempt factory method.
var ErrAttemptIsNotConstructed = errors.New("Attempt must be created via NewAttempt constructor")

// Attempt is the aggregate tracking one job through the booking workflow.
// It is created when a job passes filtering and deduplication, owns the job
// from that point on, and is finished once its status reaches Succeeded or
// FailedTerminal.
//
// Invariants:
//   - Must reference a valid job
//   - The try counter only grows, one increment per try
//   - Status transitions follow the Status state machine
//   - A terminal attempt never changes again
type Attempt struct {
	id kernel.UUID

	// job is the listing being booked; ownership transferred from the poll cycle.
	job *job.Job

	// count is the number of tries started so far.
	count int

	status Status

	// lastErr is the most recent failure, kept for the terminal record.
	lastErr error

	// confirmation is set once the booking succeeds.
	confirmation Confirmation

	isConstructed bool
}

// Confirmation carries the details returned by the booking capability for a
// successful booking.
type Confirmation struct {
	ApplicationID string
	BookedAt      time.Time
}

// NewAttempt creates an Attempt for a job in Pending status with a zero try
// counter.
func NewAttempt(j *job.Job) (*Attempt, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	return &Attempt{
		id:            kernel.NewUUID(),
		job:           j,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// Validate ensures the Attempt was properly constructed through NewAttempt.
func (a *Attempt) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttemptIsNotConstructed
	}

	return nil
}

// ID returns the attempt's unique identifier.
func (a *Attempt) ID() kernel.UUID {
	return a.id
}

// Job returns the listing being booked.
func (a *Attempt) Job() *job.Job {
	return a.job
}

// Count returns the number of tries started so far.
func (a *Attempt) Count() int {
	return a.count
}

// Status returns the attempt's current lifecycle state.
func (a *Attempt) Status() Status {
	return a.status
}

// LastError returns the most recent failure, or nil.
func (a *Attempt) LastError() error {
	return a.lastErr
}

// Confirmation returns the booking confirmation. Only meaningful once the
// attempt has Succeeded.
func (a *Attempt) Confirmation() Confirmation {
	return a.confirmation
}

// BeginTry increments the try counter. The attempt must be Pending.
func (a *Attempt) BeginTry() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to begin a try from", a.status.String()),
		)
	}

	a.count++
	return nil
}

// RecordSuccess transitions the attempt to Succeeded with the booking
// confirmation.
func (a *Attempt) RecordSuccess(confirmation Confirmation) error {
	if err := a.Validate(); err != nil {
		return err
	}

	next, err := a.status.Succeed()
	if err != nil {
		return err
	}

	a.status = next
	a.confirmation = confirmation
	a.lastErr = nil
	return nil
}

// RecordRetryableFailure transitions the attempt to FailedRetryable,
// remembering the error for a possible terminal record.
func (a *Attempt) RecordRetryableFailure(failure error) error {
	if err := a.Validate(); err != nil {
		return err
	}

	next, err := a.status.FailRetryable()
	if err != nil {
		return err
	}

	a.status = next
	a.lastErr = failure
	return nil
}

// ScheduleRetry transitions a retryably-failed attempt back to Pending.
func (a *Attempt) ScheduleRetry() error {
	if err := a.Validate(); err != nil {
		return err
	}

	next, err := a.status.Retry()
	if err != nil {
		return err
	}

	a.status = next
	return nil
}

// RecordTerminalFailure transitions the attempt to FailedTerminal with its
// final error.
func (a *Attempt) RecordTerminalFailure(failure error) error {
	if err := a.Validate(); err != nil {
		return err
	}

	next, err := a.status.FailTerminal()
	if err != nil {
		return err
	}

	a.status = next
	if failure != nil {
		a.lastErr = failure
	}
	return nil
}
