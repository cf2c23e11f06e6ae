package commands

import (
	"context"
	"errors"
	"fmt"

	"shiftbooker/internal/core/application/dispatch"
	"shiftbooker/internal/core/application/tracking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
	"shiftbooker/internal/core/domain/services"
	"shiftbooker/internal/core/ports"
)

// Booker drives one listing to its terminal booking outcome. Implemented by
// BookJobCommandHandler; abstracted so the poll cycle can be tested without
// real bookings.
type Booker interface {
	Handle(ctx context.Context, cmd BookJobCommand) error
}

// PollJobsCommandHandler runs the poll cycle: fetch, filter, deduplicate,
// dispatch. Listings that pass the location filter and have not been seen
// before are marked as dispatched first and only then handed to the
// dispatcher; if the dispatcher turns the hand-off down, the mark is rolled
// back so a later cycle can try again.
//
// Example:
//
//	handler := NewPollJobsCommandHandler(
//	    source, filter, tracker, dispatcher, booker, sink, statistics, true,
//	)
//
//	if err := handler.Handle(ctx, NewPollJobsCommand()); err != nil {
//	    log.Printf("poll cycle failed: %v", err)
//	}
type PollJobsCommandHandler struct {
	source     ports.JobSource
	filter     services.LocationFilter
	tracker    *tracking.DedupTracker
	dispatcher *dispatch.Dispatcher
	booker     Booker
	sink       ports.OutcomeSink
	statistics *stats.PollStatistics

	// autoBook controls whether matching listings are booked or only
	// reported as discovered.
	autoBook bool
}

// NewPollJobsCommandHandler creates a handler for poll cycle operations.
func NewPollJobsCommandHandler(
	source ports.JobSource,
	filter services.LocationFilter,
	tracker *tracking.DedupTracker,
	dispatcher *dispatch.Dispatcher,
	booker Booker,
	sink ports.OutcomeSink,
	statistics *stats.PollStatistics,
	autoBook bool,
) *PollJobsCommandHandler {
	return &PollJobsCommandHandler{
		source:     source,
		filter:     filter,
		tracker:    tracker,
		dispatcher: dispatcher,
		booker:     booker,
		sink:       sink,
		statistics: statistics,
		autoBook:   autoBook,
	}
}

// Handle processes one poll cycle. A fetch failure counts as an empty cycle;
// the error is returned after the cycle's counters are committed, and the
// next tick polls again. Dispatch refusals are collected but never stop the
// cycle from offering the remaining listings.
func (h *PollJobsCommandHandler) Handle(ctx context.Context, cmd PollJobsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	jobs, err := h.source.FetchAvailableJobs(ctx)
	if err != nil {
		h.statistics.RecordPoll(0, 0, 0)
		return fmt.Errorf("fetch available jobs: %w", err)
	}

	var filteredOut, duplicates int
	var dispatchErrs []error
	for _, j := range jobs {
		if !h.filter.Matches(j) {
			filteredOut++
			continue
		}

		if !h.tracker.TryMark(j.ID()) {
			duplicates++
			continue
		}

		h.sink.JobDiscovered(ctx, j)

		if !h.autoBook {
			continue
		}

		if err = h.dispatchBooking(ctx, j); err != nil {
			h.tracker.Release(j.ID())
			dispatchErrs = append(dispatchErrs, fmt.Errorf("dispatch %s: %w", j.ID(), err))
		}
	}

	h.statistics.RecordPoll(len(jobs), filteredOut, duplicates)

	return errors.Join(dispatchErrs...)
}

// dispatchBooking hands the listing to the dispatcher. The booking task runs
// against the dispatcher's context so it survives the poll cycle that
// submitted it.
func (h *PollJobsCommandHandler) dispatchBooking(ctx context.Context, j *job.Job) error {
	bookCmd, err := NewBookJobCommand(j)
	if err != nil {
		return err
	}

	return h.dispatcher.Dispatch(ctx, func(taskCtx context.Context) {
		// Terminal outcomes are reported through the sink inside the
		// booking handler; nothing to do with the error here.
		_ = h.booker.Handle(taskCtx, bookCmd)
	})
}
