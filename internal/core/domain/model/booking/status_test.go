package booking_test

import (
	"testing"

	"shiftbooker/internal/core/domain/model/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		valid := []booking.Status{
			booking.Pending,
			booking.Succeeded,
			booking.FailedRetryable,
			booking.FailedTerminal,
		}

		for _, s := range valid {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, booking.Unknown.Validate())
		require.Error(t, booking.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   booking.Status
		expected string
	}{
		{booking.Unknown, "Unknown"},
		{booking.Pending, "Pending"},
		{booking.Succeeded, "Succeeded"},
		{booking.FailedRetryable, "FailedRetryable"},
		{booking.FailedTerminal, "FailedTerminal"},
		{booking.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, booking.Pending.IsTerminal())
	assert.False(t, booking.FailedRetryable.IsTerminal())
	assert.True(t, booking.Succeeded.IsTerminal())
	assert.True(t, booking.FailedTerminal.IsTerminal())
}

func TestStatus_Succeed(t *testing.T) {
	t.Run("pending_can_succeed", func(t *testing.T) {
		next, err := booking.Pending.Succeed()
		require.NoError(t, err)
		assert.Equal(t, booking.Succeeded, next)
	})

	t.Run("other_statuses_cannot_succeed", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Unknown, booking.Succeeded, booking.FailedRetryable, booking.FailedTerminal} {
			_, err := s.Succeed()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_FailRetryable(t *testing.T) {
	t.Run("pending_can_fail_retryably", func(t *testing.T) {
		next, err := booking.Pending.FailRetryable()
		require.NoError(t, err)
		assert.Equal(t, booking.FailedRetryable, next)
	})

	t.Run("terminal_statuses_cannot_fail_retryably", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Succeeded, booking.FailedTerminal} {
			_, err := s.FailRetryable()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Retry(t *testing.T) {
	t.Run("retryable_failure_can_retry", func(t *testing.T) {
		next, err := booking.FailedRetryable.Retry()
		require.NoError(t, err)
		assert.Equal(t, booking.Pending, next)
	})

	t.Run("other_statuses_cannot_retry", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Pending, booking.Succeeded, booking.FailedTerminal} {
			_, err := s.Retry()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_FailTerminal(t *testing.T) {
	t.Run("pending_can_fail_terminally", func(t *testing.T) {
		next, err := booking.Pending.FailTerminal()
		require.NoError(t, err)
		assert.Equal(t, booking.FailedTerminal, next)
	})

	t.Run("retryable_failure_can_fail_terminally", func(t *testing.T) {
		next, err := booking.FailedRetryable.FailTerminal()
		require.NoError(t, err)
		assert.Equal(t, booking.FailedTerminal, next)
	})

	t.Run("terminal_statuses_stay_terminal", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Succeeded, booking.FailedTerminal} {
			_, err := s.FailTerminal()
			require.Error(t, err, s.String())
		}
	})
}
