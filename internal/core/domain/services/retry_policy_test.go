package services_test

import (
	"errors"
	"testing"
	"time"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAttempt(t *testing.T) *booking.Attempt {
	t.Helper()
	j, err := job.NewJob("JOB-1-SCH-1", "Warehouse Associate", job.NewLocation("Toronto", nil), job.ShiftDetail{}, time.Now())
	require.NoError(t, err)
	a, err := booking.NewAttempt(j)
	require.NoError(t, err)
	return a
}

func TestNewRetryPolicy(t *testing.T) {
	t.Run("accepts_valid_config", func(t *testing.T) {
		p, err := services.NewRetryPolicy(3, 2*time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3, p.MaxAttempts())
		assert.Equal(t, 2*time.Second, p.Delay())
	})

	t.Run("accepts_zero_delay", func(t *testing.T) {
		_, err := services.NewRetryPolicy(1, 0)
		require.NoError(t, err)
	})

	t.Run("rejects_zero_attempts", func(t *testing.T) {
		_, err := services.NewRetryPolicy(0, time.Second)
		require.Error(t, err)
	})

	t.Run("rejects_negative_delay", func(t *testing.T) {
		_, err := services.NewRetryPolicy(3, -time.Second)
		require.Error(t, err)
	})
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	transport := booking.NewTransportError(errors.New("connection reset"))

	t.Run("retryable_error_within_budget", func(t *testing.T) {
		p, _ := services.NewRetryPolicy(3, 0)
		a := pendingAttempt(t)
		require.NoError(t, a.BeginTry()) // count = 1

		assert.True(t, p.ShouldRetry(a, transport))
	})

	t.Run("budget_exhausted_gives_up", func(t *testing.T) {
		p, _ := services.NewRetryPolicy(3, 0)
		a := pendingAttempt(t)
		for range 3 {
			require.NoError(t, a.BeginTry())
			require.NoError(t, a.RecordRetryableFailure(transport))
			if p.ShouldRetry(a, transport) {
				require.NoError(t, a.ScheduleRetry())
			}
		}

		assert.Equal(t, 3, a.Count())
		assert.False(t, p.ShouldRetry(a, transport))
	})

	t.Run("terminal_error_is_never_retried", func(t *testing.T) {
		p, _ := services.NewRetryPolicy(3, 0)
		a := pendingAttempt(t)
		require.NoError(t, a.BeginTry())

		assert.False(t, p.ShouldRetry(a, booking.NewRejectedError("shift no longer available")))
	})

	t.Run("never_exceeds_max_attempts", func(t *testing.T) {
		const maxAttempts = 5
		p, _ := services.NewRetryPolicy(maxAttempts, 0)
		a := pendingAttempt(t)

		tries := 0
		for {
			require.NoError(t, a.BeginTry())
			tries++
			require.NoError(t, a.RecordRetryableFailure(transport))
			if !p.ShouldRetry(a, transport) {
				require.NoError(t, a.RecordTerminalFailure(nil))
				break
			}
			require.NoError(t, a.ScheduleRetry())
		}

		assert.Equal(t, maxAttempts, tries)
		assert.Equal(t, booking.FailedTerminal, a.Status())
	})
}
