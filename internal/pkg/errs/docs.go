// Package errs provides standardized error types for the booking service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Validation code in the domain model builds on these types so that
// configuration and data errors surface with uniform, single-line messages
// suitable for structured logging.
package errs
