package ports

import (
	"context"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
)

// OutcomeSink receives notable events from the booking pipeline: newly
// discovered listings, the terminal outcome of every booking attempt, and
// periodic statistics snapshots. Implementations must tolerate being called
// concurrently from multiple booking tasks.
type OutcomeSink interface {
	// JobDiscovered reports a listing that passed the filter and has not
	// been seen before.
	JobDiscovered(ctx context.Context, j *job.Job)

	// BookingSucceeded reports a confirmed booking.
	BookingSucceeded(ctx context.Context, record booking.SuccessRecord)

	// BookingFailed reports an attempt that has terminally failed.
	BookingFailed(ctx context.Context, record booking.FailureRecord)

	// StatisticsSnapshot reports the current counters.
	StatisticsSnapshot(ctx context.Context, snapshot stats.Snapshot)
}
