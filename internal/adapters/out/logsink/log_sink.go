// Package logsink reports booking pipeline events through structured logs.
// Discoveries, successes, and failures each get their own component logger so
// log output can be filtered per concern.
package logsink

import (
	"context"
	"log/slog"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
)

// LogSink implements the outcome sink on top of slog.
type LogSink struct {
	discoveries *slog.Logger
	outcomes    *slog.Logger
	statistics  *slog.Logger
}

// NewLogSink creates a sink deriving component loggers from the given logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{
		discoveries: logger.With("component", "job_discoveries"),
		outcomes:    logger.With("component", "booking_outcomes"),
		statistics:  logger.With("component", "statistics"),
	}
}

// JobDiscovered logs a listing that passed filtering and deduplication.
func (s *LogSink) JobDiscovered(ctx context.Context, j *job.Job) {
	shift := j.Shift()
	s.discoveries.InfoContext(ctx, "New job discovered",
		"job_id", j.ID(),
		"title", j.Title(),
		"location", j.Location().String(),
		"schedule", shift.ScheduleName,
		"pay_rate", shift.PayRate,
		"available_slots", shift.AvailableSlots,
	)
}

// BookingSucceeded logs a confirmed booking with the counters at that moment.
func (s *LogSink) BookingSucceeded(ctx context.Context, record booking.SuccessRecord) {
	s.outcomes.InfoContext(ctx, "Booking succeeded",
		"attempt_id", record.AttemptID,
		"job_id", record.JobID,
		"title", record.Title,
		"location", record.Location,
		"tries", record.Tries,
		"application_id", record.Confirmation.ApplicationID,
		"successful_bookings", record.Stats.SuccessfulBookings,
	)
}

// BookingFailed logs a terminally failed attempt.
func (s *LogSink) BookingFailed(ctx context.Context, record booking.FailureRecord) {
	s.outcomes.ErrorContext(ctx, "Booking failed",
		"attempt_id", record.AttemptID,
		"job_id", record.JobID,
		"location", record.Location,
		"error_kind", string(record.ErrorKind),
		"error", record.Message,
		"tries", record.Tries,
	)
}

// StatisticsSnapshot logs the current counters.
func (s *LogSink) StatisticsSnapshot(ctx context.Context, snapshot stats.Snapshot) {
	s.statistics.InfoContext(ctx, "Poll statistics",
		"total_polls", snapshot.TotalPolls,
		"jobs_seen", snapshot.JobsSeen,
		"filtered_out", snapshot.FilteredOut,
		"duplicates_skipped", snapshot.DuplicatesSkipped,
		"booking_attempts", snapshot.BookingAttempts,
		"successful_bookings", snapshot.SuccessfulBookings,
		"failed_bookings", snapshot.FailedBookings,
		"uptime", snapshot.Uptime.String(),
	)
}
