package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "shiftbooker/internal/adapters/in/http"
	"shiftbooker/internal/core/application/usecases/queries"
	"shiftbooker/internal/core/domain/model/stats"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(statistics *stats.PollStatistics) *echo.Echo {
	server := httpin.NewServer(
		queries.NewGetStatisticsQueryHandler(statistics),
		queries.NewGetRecentOutcomesQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func TestServer_GetHealth(t *testing.T) {
	e := newTestServer(stats.NewPollStatistics())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_GetStatus(t *testing.T) {
	statistics := stats.NewPollStatistics()
	statistics.RecordPoll(5, 2, 1)
	statistics.RecordBookingAttempt()
	statistics.RecordBookingSuccess()

	e := newTestServer(statistics)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot stats.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, uint64(1), snapshot.TotalPolls)
	assert.Equal(t, uint64(5), snapshot.JobsSeen)
	assert.Equal(t, uint64(2), snapshot.FilteredOut)
	assert.Equal(t, uint64(1), snapshot.SuccessfulBookings)
}

func TestServer_GetOutcomes_InvalidLimit(t *testing.T) {
	e := newTestServer(stats.NewPollStatistics())

	for _, limit := range []string{"abc", "0", "-5", "100000"} {
		req := httptest.NewRequest(http.MethodGet, "/outcomes?limit="+limit, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}
