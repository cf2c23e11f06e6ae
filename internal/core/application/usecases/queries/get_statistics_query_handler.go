package queries

import (
	"context"

	"shiftbooker/internal/core/domain/model/stats"
)

// GetStatisticsQueryHandler reads the poll loop counters. Snapshots are taken
// atomically, so the response never mixes counters from different moments.
type GetStatisticsQueryHandler struct {
	statistics *stats.PollStatistics
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(statistics *stats.PollStatistics) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{statistics: statistics}
}

// Handle executes the query and returns the current snapshot.
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (stats.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return stats.Snapshot{}, err
	}

	return h.statistics.Snapshot(), nil
}
