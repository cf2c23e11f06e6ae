package cmd

import (
	"fmt"
	"log/slog"

	"shiftbooker/internal/adapters/out/fanout"
	"shiftbooker/internal/adapters/out/hiringapi"
	"shiftbooker/internal/adapters/out/logsink"
	"shiftbooker/internal/adapters/out/postgres/outcomerepo"
	"shiftbooker/internal/core/application/dispatch"
	"shiftbooker/internal/core/application/tracking"
	"shiftbooker/internal/core/application/usecases/commands"
	"shiftbooker/internal/core/application/usecases/queries"
	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/core/domain/model/stats"
	"shiftbooker/internal/core/domain/services"
	"shiftbooker/internal/core/ports"
	"shiftbooker/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the daemon together. One instance owns the shared
// state: counters, the dedup tracker, the dispatcher, and the outcome sink.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB

	statistics *stats.PollStatistics
	tracker    *tracking.DedupTracker
	dispatcher *dispatch.Dispatcher
	client     *hiringapi.Client
	sink       ports.OutcomeSink
	filter     services.LocationFilter
	policy     services.RetryPolicy
}

// NewCompositionRoot builds the object graph from configuration. Invalid
// configuration surfaces here, before anything starts running.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	filterConfig := services.LocationFilterConfig{
		Enabled:      config.FilterEnabled,
		AllowedNames: config.AllowedLocations,
	}

	var searchCenter *kernel.GeoPoint
	if config.FilterHasCenter {
		center, err := kernel.NewGeoPoint(config.FilterLatitude, config.FilterLongitude)
		if err != nil {
			return nil, fmt.Errorf("filter center: %w", err)
		}
		searchCenter = &center
		filterConfig.GeoCenter = &center
		filterConfig.RadiusKm = config.FilterRadiusKm
	}

	filter, err := services.NewLocationFilter(filterConfig)
	if err != nil {
		return nil, fmt.Errorf("location filter: %w", err)
	}

	policy, err := services.NewRetryPolicy(config.RetryAttempts, config.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry policy: %w", err)
	}

	dispatcher, err := dispatch.NewDispatcher(config.MaxConcurrentBookings, config.DispatchTimeout)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	client, err := hiringapi.NewClient(hiringapi.Config{
		SearchURL:      config.SearchURL,
		ApplicationURL: config.ApplicationURL,
		AuthToken:      config.AuthToken,
		CandidateID:    config.CandidateID,
		SearchCenter:   searchCenter,
		SearchRadiusKm: int(config.FilterRadiusKm),
	})
	if err != nil {
		return nil, fmt.Errorf("hiring api client: %w", err)
	}

	sink := fanout.NewSink(
		logsink.NewLogSink(logger),
		outcomerepo.NewSink(outcomerepo.NewGormOutcomeRepository(gormDB), logger),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		statistics: stats.NewPollStatistics(),
		tracker:    tracking.NewDedupTracker(),
		dispatcher: dispatcher,
		client:     client,
		sink:       sink,
		filter:     filter,
		policy:     policy,
	}, nil
}

func (c *CompositionRoot) CreateBookJobCommandHandler() *commands.BookJobCommandHandler {
	return commands.NewBookJobCommandHandler(c.client, c.policy, c.sink, c.statistics)
}

func (c *CompositionRoot) CreatePollJobsCommandHandler() *commands.PollJobsCommandHandler {
	return commands.NewPollJobsCommandHandler(
		c.client,
		c.filter,
		c.tracker,
		c.dispatcher,
		c.CreateBookJobCommandHandler(),
		c.sink,
		c.statistics,
		c.config.AutoBook,
	)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.statistics)
}

func (c *CompositionRoot) CreateGetRecentOutcomesQueryHandler() queries.GetRecentOutcomesQueryHandler {
	return queries.NewGetRecentOutcomesQueryHandler(c.gormDB)
}

// OutcomeSink returns the shared sink used by handlers and the stats report
// job.
func (c *CompositionRoot) OutcomeSink() ports.OutcomeSink {
	return c.sink
}

// Dispatcher returns the shared dispatcher so shutdown can drain it.
func (c *CompositionRoot) Dispatcher() *dispatch.Dispatcher {
	return c.dispatcher
}

// CreateJobManager wires the scheduled jobs with the shared handlers.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePollJobsCommandHandler(),
		c.CreateGetStatisticsQueryHandler(),
		c.sink,
		c.config.PollInterval,
		c.config.StatsReportInterval,
		logger,
	)
}
