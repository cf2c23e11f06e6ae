// Package jobs provides scheduled background tasks for the booking daemon.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the daemon is built around.
//
// # Available Jobs
//
// 1. PollJob - Runs the poll cycle (fetch, filter, deduplicate, dispatch) on the configured interval
// 2. StatsReportJob - Periodically publishes a counters snapshot to the outcome sink
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pollHandler, statisticsHandler, sink, pollInterval, statsInterval, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use "@every" cron expressions built from configured durations.
// The poll job wraps its schedule in cron.SkipIfStillRunning, so a slow cycle
// delays the next tick instead of overlapping with it.
//
// # Error Handling
//
// - A failed poll cycle is logged and the next tick polls again
// - Failed job starts will stop any already running jobs
package jobs
