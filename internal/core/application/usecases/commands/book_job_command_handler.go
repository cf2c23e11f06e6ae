package commands

import (
	"context"
	"time"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/stats"
	"shiftbooker/internal/core/domain/services"
	"shiftbooker/internal/core/ports"
)

// BookJobCommandHandler drives a booking attempt to its terminal outcome.
// It tries the booking client, classifies each failure, waits out the retry
// delay between tries, and reports exactly one terminal record to the
// outcome sink.
//
// Example:
//
//	handler := NewBookJobCommandHandler(client, policy, sink, statistics)
//	cmd, _ := NewBookJobCommand(discovered)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // terminal failure, already reported to the sink
//	}
type BookJobCommandHandler struct {
	client     ports.BookingClient
	policy     services.RetryPolicy
	sink       ports.OutcomeSink
	statistics *stats.PollStatistics
}

// NewBookJobCommandHandler creates a handler for booking operations.
func NewBookJobCommandHandler(
	client ports.BookingClient,
	policy services.RetryPolicy,
	sink ports.OutcomeSink,
	statistics *stats.PollStatistics,
) *BookJobCommandHandler {
	return &BookJobCommandHandler{
		client:     client,
		policy:     policy,
		sink:       sink,
		statistics: statistics,
	}
}

// Handle processes the booking command. Each try counts against the retry
// budget; retryable failures wait out the fixed delay before the next try,
// terminal failures and context cancellation stop immediately. The sink
// receives exactly one terminal record either way. Returns nil on a
// confirmed booking and the final failure otherwise.
func (h *BookJobCommandHandler) Handle(ctx context.Context, cmd BookJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	attempt, err := booking.NewAttempt(cmd.Job())
	if err != nil {
		return err
	}

	for {
		if err = ctx.Err(); err != nil {
			return h.failTerminally(ctx, attempt, booking.NewShutdownError())
		}

		if err = attempt.BeginTry(); err != nil {
			return err
		}
		h.statistics.RecordBookingAttempt()

		confirmation, bookErr := h.client.AttemptBook(ctx, cmd.Job())
		if bookErr == nil {
			if err = attempt.RecordSuccess(confirmation); err != nil {
				return err
			}
			h.statistics.RecordBookingSuccess()
			h.sink.BookingSucceeded(ctx, booking.NewSuccessRecord(attempt, h.statistics.Snapshot()))
			return nil
		}

		if !booking.IsRetryable(bookErr) {
			return h.failTerminally(ctx, attempt, bookErr)
		}

		if err = attempt.RecordRetryableFailure(bookErr); err != nil {
			return err
		}

		if !h.policy.ShouldRetry(attempt, bookErr) {
			return h.failTerminally(ctx, attempt, nil)
		}

		if err = attempt.ScheduleRetry(); err != nil {
			return err
		}

		if err = h.waitRetryDelay(ctx); err != nil {
			return h.failTerminally(ctx, attempt, booking.NewShutdownError())
		}
	}
}

// waitRetryDelay sleeps for the policy's fixed delay, returning early with
// the cancellation cause if the context ends first.
func (h *BookJobCommandHandler) waitRetryDelay(ctx context.Context) error {
	delay := h.policy.Delay()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// failTerminally moves the attempt to its terminal failed state, updates the
// counters, and emits the failure record. A nil failure keeps the attempt's
// last recorded error as the final one.
func (h *BookJobCommandHandler) failTerminally(
	ctx context.Context, attempt *booking.Attempt, failure error,
) error {
	if err := attempt.RecordTerminalFailure(failure); err != nil {
		return err
	}

	h.statistics.RecordBookingFailure()
	h.sink.BookingFailed(ctx, booking.NewFailureRecord(attempt))

	return attempt.LastError()
}
