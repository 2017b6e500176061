package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tradejournal/internal/delivery/http/dto"
	"tradejournal/internal/domain"
	"tradejournal/internal/middleware"
)

// TradeHandler handles trade CRUD requests
type TradeHandler struct {
	trades domain.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(trades domain.TradeService) *TradeHandler {
	return &TradeHandler{trades: trades}
}

// Create records a new trade for the authenticated user
// POST /api/trades
func (h *TradeHandler) Create(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.TradeCreateRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	trade, err := req.ToTrade()
	if err != nil {
		return BadRequestResponse(c, "Invalid trade date")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.trades.Create(ctx, userID, trade)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return CreatedResponse(c, dto.FromTrade(created))
}

// List returns the user's trades sorted by trade date descending
// GET /api/trades
func (h *TradeHandler) List(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trades, err := h.trades.List(ctx, userID)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.FromTrades(trades))
}

// Get returns a single trade under the ownership rule
// GET /api/trades/:id
func (h *TradeHandler) Get(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable ID cannot name an existing trade
		return NotFoundResponse(c, "Trade not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trade, err := h.trades.Get(ctx, tradeID, userID)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.FromTrade(trade))
}

// Update applies a partial update and returns the persisted record
// PUT /api/trades/:id
func (h *TradeHandler) Update(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NotFoundResponse(c, "Trade not found")
	}

	var req dto.TradeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return BadRequestResponse(c, "Invalid trade date")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trade, err := h.trades.Update(ctx, tradeID, userID, patch)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.FromTrade(trade))
}

// Delete removes a trade under the ownership rule
// DELETE /api/trades/:id
func (h *TradeHandler) Delete(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NotFoundResponse(c, "Trade not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.trades.Delete(ctx, tradeID, userID); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "Trade deleted successfully", nil)
}
