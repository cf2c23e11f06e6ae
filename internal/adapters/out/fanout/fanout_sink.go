// Package fanout combines several outcome sinks into one.
package fanout

import (
	"context"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
	"shiftbooker/internal/core/ports"
)

// Sink delivers every event to each wrapped sink in order.
type Sink struct {
	sinks []ports.OutcomeSink
}

// NewSink creates a fanout over the given sinks.
func NewSink(sinks ...ports.OutcomeSink) *Sink {
	return &Sink{sinks: sinks}
}

// JobDiscovered forwards the discovery to every sink.
func (s *Sink) JobDiscovered(ctx context.Context, j *job.Job) {
	for _, sink := range s.sinks {
		sink.JobDiscovered(ctx, j)
	}
}

// BookingSucceeded forwards the success record to every sink.
func (s *Sink) BookingSucceeded(ctx context.Context, record booking.SuccessRecord) {
	for _, sink := range s.sinks {
		sink.BookingSucceeded(ctx, record)
	}
}

// BookingFailed forwards the failure record to every sink.
func (s *Sink) BookingFailed(ctx context.Context, record booking.FailureRecord) {
	for _, sink := range s.sinks {
		sink.BookingFailed(ctx, record)
	}
}

// StatisticsSnapshot forwards the snapshot to every sink.
func (s *Sink) StatisticsSnapshot(ctx context.Context, snapshot stats.Snapshot) {
	for _, sink := range s.sinks {
		sink.StatisticsSnapshot(ctx, snapshot)
	}
}
