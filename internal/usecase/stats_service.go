package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradejournal/internal/domain"
)

// StatsServiceImpl implements the StatsService interface
type StatsServiceImpl struct {
	trades domain.TradeRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(trades domain.TradeRepository) domain.StatsService {
	return &StatsServiceImpl{trades: trades}
}

// Summarize computes the dashboard metrics over the user's trade set.
// Trades with no recorded P&L count toward the total but contribute
// zero to the sum and to neither the winning nor the losing bucket.
func (s *StatsServiceImpl) Summarize(ctx context.Context, userID uuid.UUID) (*domain.Stats, error) {
	trades, err := s.trades.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades for stats: %w", err)
	}

	stats := &domain.Stats{TotalTrades: len(trades)}

	totalPnl := decimal.Zero
	for _, trade := range trades {
		if trade.PnL == nil {
			continue
		}
		totalPnl = totalPnl.Add(decimal.NewFromFloat(*trade.PnL))
		switch {
		case *trade.PnL > 0:
			stats.WinningTrades++
		case *trade.PnL < 0:
			stats.LosingTrades++
		}
	}

	stats.TotalPnl, _ = totalPnl.Round(2).Float64()

	if stats.TotalTrades > 0 {
		winRate := decimal.NewFromInt(int64(stats.WinningTrades)).
			Div(decimal.NewFromInt(int64(stats.TotalTrades))).
			Mul(decimal.NewFromInt(100))
		stats.WinRate, _ = winRate.Round(2).Float64()
	}

	return stats, nil
}
