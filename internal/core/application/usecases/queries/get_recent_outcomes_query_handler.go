package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRecentOutcomesQueryHandler retrieves recorded booking outcomes from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetRecentOutcomesQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentOutcomesQueryHandler creates a handler for outcome retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetRecentOutcomesQueryHandler(db *gorm.DB) GetRecentOutcomesQueryHandler {
	return GetRecentOutcomesQueryHandler{db: db}
}

// Handle executes the query and returns up to Limit outcome records, newest
// first.
func (h GetRecentOutcomesQueryHandler) Handle(
	ctx context.Context,
	query GetRecentOutcomesQuery,
) ([]GetRecentOutcomesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]GetRecentOutcomesQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			attempt_id,
			recorded_at,
			job_id,
			title,
			location,
			outcome,
			error_kind,
			message,
			tries,
			application_id
		FROM booking_outcomes
		ORDER BY recorded_at DESC
		LIMIT ?`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var outcome GetRecentOutcomesQueryResponse
		if err = rows.Scan(
			&outcome.AttemptID,
			&outcome.RecordedAt,
			&outcome.JobID,
			&outcome.Title,
			&outcome.Location,
			&outcome.Outcome,
			&outcome.ErrorKind,
			&outcome.Message,
			&outcome.Tries,
			&outcome.ApplicationID,
		); err != nil {
			return nil, err
		}

		outcomes = append(outcomes, outcome)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
