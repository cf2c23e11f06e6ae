package queries_test

import (
	"testing"

	"shiftbooker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetStatisticsQuery(t *testing.T) {
	query := queries.NewGetStatisticsQuery()

	require.NoError(t, query.Validate())
}

func TestGetStatisticsQuery_Validate(t *testing.T) {
	query := queries.GetStatisticsQuery{} // not constructed properly

	require.ErrorIs(t, query.Validate(), queries.ErrGetStatisticsQueryIsNotConstructed)
}
