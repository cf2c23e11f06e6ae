package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shiftbooker/internal/core/application/usecases/queries"
	"shiftbooker/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatsReportJob periodically publishes a statistics snapshot to the outcome
// sink so long-running daemons leave a trail of counters in the logs.
type StatsReportJob struct {
	handler  queries.GetStatisticsQueryHandler
	sink     ports.OutcomeSink
	cron     *cron.Cron
	interval time.Duration
	logger   *slog.Logger
}

// NewStatsReportJob creates a job that reports statistics every interval.
func NewStatsReportJob(
	handler queries.GetStatisticsQueryHandler,
	sink ports.OutcomeSink,
	interval time.Duration,
	logger *slog.Logger,
) *StatsReportJob {
	return &StatsReportJob{
		handler:  handler,
		sink:     sink,
		cron:     cron.New(),
		interval: interval,
		logger:   logger.With("component", "stats_report_job"),
	}
}

// Start begins the reporting job on its interval.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		snapshot, err := j.handler.Handle(ctx, queries.NewGetStatisticsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics report failed", "error", err)
			return
		}

		j.sink.StatisticsSnapshot(ctx, snapshot)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started", "interval", j.interval.String())
	return nil
}

// Stop stops the reporting job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
