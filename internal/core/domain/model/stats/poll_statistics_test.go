package stats_test

import (
	"sync"
	"testing"
	"time"

	"shiftbooker/internal/core/domain/model/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollStatistics_RecordPoll(t *testing.T) {
	s := stats.NewPollStatistics()

	s.RecordPoll(10, 3, 2)
	s.RecordPoll(5, 0, 1)

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.TotalPolls)
	assert.Equal(t, uint64(15), snap.JobsSeen)
	assert.Equal(t, uint64(3), snap.FilteredOut)
	assert.Equal(t, uint64(3), snap.DuplicatesSkipped)
}

func TestPollStatistics_BookingCounters(t *testing.T) {
	s := stats.NewPollStatistics()

	s.RecordBookingAttempt()
	s.RecordBookingAttempt()
	s.RecordBookingAttempt()
	s.RecordBookingSuccess()
	s.RecordBookingFailure()

	snap := s.Snapshot()
	assert.Equal(t, uint64(3), snap.BookingAttempts)
	assert.Equal(t, uint64(1), snap.SuccessfulBookings)
	assert.Equal(t, uint64(1), snap.FailedBookings)
}

func TestPollStatistics_Snapshot(t *testing.T) {
	t.Run("start_time_and_uptime_are_set", func(t *testing.T) {
		s := stats.NewPollStatistics()

		snap := s.Snapshot()
		require.False(t, snap.StartTime.IsZero())
		assert.GreaterOrEqual(t, snap.Uptime, time.Duration(0))
	})

	t.Run("snapshot_is_a_copy", func(t *testing.T) {
		s := stats.NewPollStatistics()
		s.RecordPoll(1, 0, 0)

		before := s.Snapshot()
		s.RecordPoll(1, 0, 0)

		assert.Equal(t, uint64(1), before.TotalPolls)
		assert.Equal(t, uint64(2), s.Snapshot().TotalPolls)
	})
}

func TestPollStatistics_ConcurrentUpdates(t *testing.T) {
	const workers = 8
	const perWorker = 250

	s := stats.NewPollStatistics()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				s.RecordPoll(2, 1, 0)
				s.RecordBookingAttempt()
				s.RecordBookingSuccess()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, uint64(workers*perWorker), snap.TotalPolls)
	assert.Equal(t, uint64(workers*perWorker*2), snap.JobsSeen)
	assert.Equal(t, uint64(workers*perWorker), snap.FilteredOut)
	assert.Equal(t, uint64(workers*perWorker), snap.BookingAttempts)
	assert.Equal(t, uint64(workers*perWorker), snap.SuccessfulBookings)
}
