// Package services provides domain services for the booking workflow that
// don't naturally belong to a single aggregate.
//
// LocationFilter is the pure predicate deciding whether a discovered job's
// location satisfies the configured name-list or geo-radius criteria.
// RetryPolicy decides retry-versus-give-up for failed booking attempts and
// supplies the fixed backoff delay. Both are stateless beyond their
// immutable configuration, which keeps them deterministic and independently
// testable.
package services
