// Package stats provides the running counters accumulated by the poll loop.
// PollStatistics is one of the two pieces of state shared across concurrent
// execution (the other being the dedup tracker); all mutation goes through a
// single mutex, and readers only ever see complete snapshots.
package stats

import (
	"sync"
	"time"
)

// PollStatistics accumulates monotonically increasing counters for the life
// of the process. Counters are never reset; a restart starts from zero.
type PollStatistics struct {
	mu sync.Mutex

	totalPolls         uint64
	jobsSeen           uint64
	filteredOut        uint64
	duplicatesSkipped  uint64
	bookingAttempts    uint64
	successfulBookings uint64
	failedBookings     uint64

	startTime time.Time
}

// Snapshot is an atomic copy of all counters, taken under the same lock that
// guards updates so it never exposes a partially-updated view.
type Snapshot struct {
	TotalPolls         uint64        `json:"total_polls"`
	JobsSeen           uint64        `json:"jobs_seen"`
	FilteredOut        uint64        `json:"filtered_out"`
	DuplicatesSkipped  uint64        `json:"duplicates_skipped"`
	BookingAttempts    uint64        `json:"booking_attempts"`
	SuccessfulBookings uint64        `json:"successful_bookings"`
	FailedBookings     uint64        `json:"failed_bookings"`
	StartTime          time.Time     `json:"start_time"`
	Uptime             time.Duration `json:"uptime"`
}

// NewPollStatistics creates statistics with the start time set to now.
func NewPollStatistics() *PollStatistics {
	return &PollStatistics{startTime: time.Now()}
}

// RecordPoll commits the counters for one completed poll cycle: one poll,
// the number of jobs the source returned, how many the location filter
// dropped, and how many were skipped as duplicates.
func (s *PollStatistics) RecordPoll(jobsSeen, filteredOut, duplicatesSkipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalPolls++
	s.jobsSeen += uint64(jobsSeen)
	s.filteredOut += uint64(filteredOut)
	s.duplicatesSkipped += uint64(duplicatesSkipped)
}

// RecordBookingAttempt counts one try against the booking capability.
func (s *PollStatistics) RecordBookingAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookingAttempts++
}

// RecordBookingSuccess counts one confirmed booking.
func (s *PollStatistics) RecordBookingSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.successfulBookings++
}

// RecordBookingFailure counts one terminally failed booking.
func (s *PollStatistics) RecordBookingFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failedBookings++
}

// Snapshot returns an atomic copy of all counters.
func (s *PollStatistics) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		TotalPolls:         s.totalPolls,
		JobsSeen:           s.jobsSeen,
		FilteredOut:        s.filteredOut,
		DuplicatesSkipped:  s.duplicatesSkipped,
		BookingAttempts:    s.bookingAttempts,
		SuccessfulBookings: s.successfulBookings,
		FailedBookings:     s.failedBookings,
		StartTime:          s.startTime,
		Uptime:             time.Since(s.startTime),
	}
}
