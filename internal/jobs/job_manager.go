package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shiftbooker/internal/core/application/usecases/commands"
	"shiftbooker/internal/core/application/usecases/queries"
	"shiftbooker/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pollJob        *PollJob
	statsReportJob *StatsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	pollHandler *commands.PollJobsCommandHandler,
	statisticsHandler queries.GetStatisticsQueryHandler,
	sink ports.OutcomeSink,
	pollInterval time.Duration,
	statsInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pollJob:        NewPollJob(pollHandler, pollInterval, logger),
		statsReportJob: NewStatsReportJob(statisticsHandler, sink, statsInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pollJob.Start(); err != nil {
		return fmt.Errorf("failed to start poll job: %w", err)
	}

	if err := jm.statsReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pollJob.Stop()
		return fmt.Errorf("failed to start stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pollJob.Stop()
	jm.statsReportJob.Stop()
}
