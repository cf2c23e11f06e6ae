package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shiftbooker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PollJob runs the poll cycle on a fixed interval. Cycles never overlap: if
// one is still fetching when the next tick fires, the tick is skipped and the
// skip is logged.
type PollJob struct {
	handler  *commands.PollJobsCommandHandler
	cron     *cron.Cron
	interval time.Duration
	logger   *slog.Logger
}

// NewPollJob creates a job that runs one poll cycle every interval.
func NewPollJob(
	handler *commands.PollJobsCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *PollJob {
	jobLogger := logger.With("component", "poll_job")

	return &PollJob{
		handler: handler,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(slogPrintf{jobLogger})),
		)),
		interval: interval,
		logger:   jobLogger,
	}
}

// Start begins the poll job on its interval.
func (j *PollJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		cmd := commands.NewPollJobsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Poll cycle failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Poll job started", "interval", j.interval.String())
	return nil
}

// Stop stops the poll job.
func (j *PollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Poll job stopped")
}

// slogPrintf adapts a slog logger to cron's printf-style logger, used for
// skip notices.
type slogPrintf struct {
	logger *slog.Logger
}

func (l slogPrintf) Printf(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}
