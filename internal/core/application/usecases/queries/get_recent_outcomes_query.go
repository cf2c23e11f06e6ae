package queries

import (
	"errors"
	"time"

	"shiftbooker/internal/pkg/errs"
	"shiftbooker/internal/pkg/guard"
)

// MaxRecentOutcomesLimit caps how many outcome rows one query may return.
const MaxRecentOutcomesLimit = 500

var ErrGetRecentOutcomesQueryIsNotConstructed = errors.New(
	"GetRecentOutcomesQuery must be created via NewGetRecentOutcomesQuery constructor",
)

// GetRecentOutcomesQuery retrieves the most recently recorded booking
// outcomes, newest first.
//
// Example:
//
//	query, err := NewGetRecentOutcomesQuery(20)
//	if err != nil {
//	    return fmt.Errorf("invalid limit: %w", err)
//	}
//
//	outcomes, err := handler.Handle(ctx, query)
type GetRecentOutcomesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentOutcomesQuery creates a query for the newest outcome records.
// The limit must be between 1 and MaxRecentOutcomesLimit.
func NewGetRecentOutcomesQuery(limit int) (GetRecentOutcomesQuery, error) {
	if limit < 1 || limit > MaxRecentOutcomesLimit {
		return GetRecentOutcomesQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, MaxRecentOutcomesLimit,
		)
	}

	return GetRecentOutcomesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentOutcomesQueryIsNotConstructed if validation fails.
func (q GetRecentOutcomesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOutcomesQueryIsNotConstructed)
}

// Limit returns the maximum number of rows to return.
func (q GetRecentOutcomesQuery) Limit() int {
	return q.limit
}

// GetRecentOutcomesQueryResponse represents one recorded booking outcome in
// the read model.
type GetRecentOutcomesQueryResponse struct {
	AttemptID     string    `json:"attempt_id"`
	RecordedAt    time.Time `json:"recorded_at"`
	JobID         string    `json:"job_id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Outcome       string    `json:"outcome"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	Message       string    `json:"message,omitempty"`
	Tries         int       `json:"tries"`
	ApplicationID string    `json:"application_id,omitempty"`
}
