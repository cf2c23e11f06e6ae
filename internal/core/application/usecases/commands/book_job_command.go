// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, then
// orchestration of domain services and ports.
package commands

import (
	"errors"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/pkg/guard"
)

var ErrBookJobCommandIsNotConstructed = errors.New(
	"BookJobCommand must be created via NewBookJobCommand constructor",
)

// BookJobCommand represents a request to book one discovered listing. The
// listing must already have passed filtering and deduplication; the command
// owns it from here to its terminal outcome.
//
// Example:
//
//	cmd, err := NewBookJobCommand(discovered)
//	if err != nil {
//	    return fmt.Errorf("invalid listing: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("booking did not go through: %v", err)
//	}
type BookJobCommand struct { //nolint:recvcheck //using for validation
	job *job.Job

	guard guard.ConstructorGuard
}

// NewBookJobCommand creates a command to book the given listing.
// Returns an error if the listing is not a properly constructed job.
func NewBookJobCommand(j *job.Job) (BookJobCommand, error) {
	if err := j.Validate(); err != nil {
		return BookJobCommand{}, err
	}

	return BookJobCommand{
		job:   j,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookJobCommandIsNotConstructed if validation fails.
func (c BookJobCommand) Validate() error {
	return c.guard.Validate(ErrBookJobCommandIsNotConstructed)
}

// Job returns the listing to book.
func (c BookJobCommand) Job() *job.Job {
	return c.job
}
