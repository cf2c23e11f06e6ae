package commands

import (
	"errors"

	"shiftbooker/internal/pkg/guard"
)

var ErrPollJobsCommandIsNotConstructed = errors.New(
	"PollJobsCommand must be created via NewPollJobsCommand constructor",
)

// PollJobsCommand represents a request to run one poll cycle: fetch the
// currently available listings, filter and deduplicate them, and hand the
// survivors to the dispatcher.
type PollJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewPollJobsCommand creates a command to run one poll cycle. The cycle is
// parameterless; what to fetch and how to filter is configuration of the
// handler, not of the request.
func NewPollJobsCommand() PollJobsCommand {
	return PollJobsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPollJobsCommandIsNotConstructed if validation fails.
func (c PollJobsCommand) Validate() error {
	return c.guard.Validate(ErrPollJobsCommandIsNotConstructed)
}
