// Package booking provides the Attempt aggregate and its supporting types
// for driving a discovered job through the external booking capability.
//
// An Attempt is created once a job has passed location filtering and
// deduplication. Its Status state machine models the retry workflow:
// Pending tries either succeed, fail retryably (and may return to Pending
// within the retry budget), or fail terminally. Terminal attempts produce
// exactly one SuccessRecord or FailureRecord for the outcome sinks.
//
// The package also defines the booking error taxonomy: whether a failure is
// retried is a property of the error surfaced by the booking capability,
// expressed through the Error type and classified by IsRetryable and KindOf.
package booking
