package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tradejournal/internal/domain"
)

// TradeServiceImpl implements the TradeService interface
type TradeServiceImpl struct {
	trades domain.TradeRepository
}

// NewTradeService creates a new TradeService
func NewTradeService(trades domain.TradeRepository) domain.TradeService {
	return &TradeServiceImpl{trades: trades}
}

// Create assigns identity and timestamps, attributes the trade to its
// owner and persists it
func (s *TradeServiceImpl) Create(ctx context.Context, userID uuid.UUID, trade *domain.Trade) (*domain.Trade, error) {
	now := time.Now().UTC()
	trade.ID = uuid.New()
	trade.UserID = userID
	trade.CreatedAt = now
	trade.UpdatedAt = now

	if err := s.trades.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	return trade, nil
}

// List returns the user's trades, newest trade date first
func (s *TradeServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*domain.Trade, error) {
	return s.trades.ListByUserID(ctx, userID)
}

// Get returns a single trade under the ownership rule
func (s *TradeServiceImpl) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Trade, error) {
	return s.trades.GetByIDForUser(ctx, id, userID)
}

// Update applies a partial update and returns the persisted record
func (s *TradeServiceImpl) Update(ctx context.Context, id, userID uuid.UUID, patch domain.TradePatch) (*domain.Trade, error) {
	return s.trades.Update(ctx, id, userID, patch)
}

// Delete removes a trade under the ownership rule
func (s *TradeServiceImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.trades.Delete(ctx, id, userID)
}
