package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/domain"
	"tradejournal/internal/middleware"
)

// DashboardHandler serves the aggregate performance stats
type DashboardHandler struct {
	stats domain.StatsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(stats domain.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats returns the user's summary metrics
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.stats.Summarize(ctx, userID)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, stats)
}
