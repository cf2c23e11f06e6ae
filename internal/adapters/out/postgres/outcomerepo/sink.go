package outcomerepo

import (
	"context"
	"log/slog"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
)

// Sink adapts the repository to the outcome sink contract. Persistence
// failures are logged and swallowed; losing one outcome row must never take
// down a booking task.
type Sink struct {
	repository *GormOutcomeRepository
	logger     *slog.Logger
}

// NewSink creates an outcome sink that persists terminal records.
func NewSink(repository *GormOutcomeRepository, logger *slog.Logger) *Sink {
	return &Sink{
		repository: repository,
		logger:     logger.With("component", "outcome_repository"),
	}
}

// JobDiscovered is a no-op; only terminal outcomes are persisted.
func (s *Sink) JobDiscovered(ctx context.Context, j *job.Job) {}

// BookingSucceeded persists the success record.
func (s *Sink) BookingSucceeded(ctx context.Context, record booking.SuccessRecord) {
	if err := s.repository.RecordSuccess(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist success record",
			"attempt_id", record.AttemptID, "error", err)
	}
}

// BookingFailed persists the failure record.
func (s *Sink) BookingFailed(ctx context.Context, record booking.FailureRecord) {
	if err := s.repository.RecordFailure(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist failure record",
			"attempt_id", record.AttemptID, "error", err)
	}
}

// StatisticsSnapshot is a no-op; snapshots live in logs, not the database.
func (s *Sink) StatisticsSnapshot(ctx context.Context, snapshot stats.Snapshot) {}
