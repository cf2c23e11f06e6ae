// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shiftbooker/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery retrieves the current poll loop counters. Returns an
// atomic snapshot for monitoring and the status endpoint.
type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates a query to retrieve the current counters.
// This is a parameterless query that always returns the full snapshot.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatisticsQueryIsNotConstructed if validation fails.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}
