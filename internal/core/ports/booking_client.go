package ports

import (
	"context"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
)

// BookingClient submits a booking for a listing against the external hiring
// platform.
type BookingClient interface {
	// AttemptBook tries to book the given listing once. On success it
	// returns the platform's confirmation. On failure it returns a
	// *booking.Error classifying whether the failure is worth retrying;
	// any other error is treated as retryable transport trouble.
	AttemptBook(ctx context.Context, j *job.Job) (booking.Confirmation, error)
}
