// Package http exposes the daemon's monitoring surface: health, current
// statistics, and recently recorded booking outcomes. The daemon's real work
// happens on the poll schedule; these endpoints only observe it.
package http

import (
	"net/http"
	"strconv"

	"shiftbooker/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const defaultOutcomesLimit = 50

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server handles HTTP requests. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	getStatisticsHandler     queries.GetStatisticsQueryHandler
	getRecentOutcomesHandler queries.GetRecentOutcomesQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getStatisticsHandler queries.GetStatisticsQueryHandler,
	getRecentOutcomesHandler queries.GetRecentOutcomesQueryHandler,
) *Server {
	return &Server{
		getStatisticsHandler:     getStatisticsHandler,
		getRecentOutcomesHandler: getRecentOutcomesHandler,
	}
}

// RegisterRoutes attaches the server's endpoints to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/status", s.GetStatus)
	e.GET("/outcomes", s.GetOutcomes)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetStatus handles GET /status - returns the current poll loop counters.
func (s *Server) GetStatus(ctx echo.Context) error {
	query := queries.NewGetStatisticsQuery()

	snapshot, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve statistics",
		})
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// GetOutcomes handles GET /outcomes - returns recent booking outcomes,
// newest first. The optional limit parameter caps the row count.
func (s *Server) GetOutcomes(ctx echo.Context) error {
	limit := defaultOutcomesLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetRecentOutcomesQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	outcomes, err := s.getRecentOutcomesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve outcomes",
		})
	}

	return ctx.JSON(http.StatusOK, outcomes)
}
