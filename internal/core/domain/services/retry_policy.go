package services

import (
	"time"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/pkg/errs"
)

// RetryPolicy decides whether a failed booking attempt gets another try and
// how long to wait before it. The backoff is a fixed configured delay, not
// exponential: the retry budget is small and bounded, so a constant spacing
// keeps total attempt time predictable.
//
// The policy itself is stateless; the per-attempt counter lives on the
// booking.Attempt aggregate, which keeps the policy independently testable
// without a live booking client.
type RetryPolicy struct {
	maxAttempts int
	delay       time.Duration
}

// NewRetryPolicy validates and builds a policy. maxAttempts is the total
// number of tries (not retries after the first), so it must be at least 1;
// delay must not be negative.
func NewRetryPolicy(maxAttempts int, delay time.Duration) (RetryPolicy, error) {
	if maxAttempts < 1 {
		return RetryPolicy{}, errs.NewValueIsInvalidError("maxAttempts must be at least 1")
	}
	if delay < 0 {
		return RetryPolicy{}, errs.NewValueIsInvalidError("delay must not be negative")
	}

	return RetryPolicy{maxAttempts: maxAttempts, delay: delay}, nil
}

// MaxAttempts returns the total try budget per job.
func (p RetryPolicy) MaxAttempts() int {
	return p.maxAttempts
}

// Delay returns the fixed wait between tries.
func (p RetryPolicy) Delay() time.Duration {
	return p.delay
}

// ShouldRetry reports whether the attempt gets another try after the given
// failure. Terminal-class errors are never retried regardless of remaining
// budget; retryable errors are retried until the try counter reaches the
// maximum.
func (p RetryPolicy) ShouldRetry(a *booking.Attempt, failure error) bool {
	if !booking.IsRetryable(failure) {
		return false
	}
	return a.Count() < p.maxAttempts
}
