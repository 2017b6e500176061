package dto

import (
	"time"

	"tradejournal/internal/domain"
)

// TradeCreateRequest represents the create-trade payload
type TradeCreateRequest struct {
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Pair          string   `json:"pair" validate:"required"`
	TradeType     string   `json:"trade_type" validate:"required,oneof=Long Short"`
	EntryPrice    float64  `json:"entry_price" validate:"required"`
	ExitPrice     *float64 `json:"exit_price"`
	Quantity      float64  `json:"quantity" validate:"required,gt=0"`
	StopLoss      *float64 `json:"stop_loss"`
	TakeProfit    *float64 `json:"take_profit"`
	RiskAmount    *float64 `json:"risk_amount"`
	PnL           *float64 `json:"pnl"`
	Comments      *string  `json:"comments"`
	ChartImageURL *string  `json:"chart_image_url"`
}

// ToTrade converts the request to a domain trade. Identity, owner and
// timestamps are assigned by the trade service.
func (r TradeCreateRequest) ToTrade() (*domain.Trade, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Trade{
		TradeDate:     date,
		Pair:          r.Pair,
		TradeType:     r.TradeType,
		EntryPrice:    r.EntryPrice,
		ExitPrice:     r.ExitPrice,
		Quantity:      r.Quantity,
		StopLoss:      r.StopLoss,
		TakeProfit:    r.TakeProfit,
		RiskAmount:    r.RiskAmount,
		PnL:           r.PnL,
		Comments:      r.Comments,
		ChartImageURL: r.ChartImageURL,
	}, nil
}

// TradeUpdateRequest represents the partial-update payload. Absent keys
// and explicit nulls both mean "leave the stored value alone"; there is
// no sentinel to clear an optional field.
type TradeUpdateRequest struct {
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Pair          *string  `json:"pair" validate:"omitempty,min=1"`
	TradeType     *string  `json:"trade_type" validate:"omitempty,oneof=Long Short"`
	EntryPrice    *float64 `json:"entry_price"`
	ExitPrice     *float64 `json:"exit_price"`
	Quantity      *float64 `json:"quantity" validate:"omitempty,gt=0"`
	StopLoss      *float64 `json:"stop_loss"`
	TakeProfit    *float64 `json:"take_profit"`
	RiskAmount    *float64 `json:"risk_amount"`
	PnL           *float64 `json:"pnl"`
	Comments      *string  `json:"comments"`
	ChartImageURL *string  `json:"chart_image_url"`
}

// ToPatch converts the request to a domain patch
func (r TradeUpdateRequest) ToPatch() (domain.TradePatch, error) {
	patch := domain.TradePatch{
		Pair:          r.Pair,
		TradeType:     r.TradeType,
		EntryPrice:    r.EntryPrice,
		ExitPrice:     r.ExitPrice,
		Quantity:      r.Quantity,
		StopLoss:      r.StopLoss,
		TakeProfit:    r.TakeProfit,
		RiskAmount:    r.RiskAmount,
		PnL:           r.PnL,
		Comments:      r.Comments,
		ChartImageURL: r.ChartImageURL,
	}

	if r.Date != nil {
		date, err := domain.ParseDate(*r.Date)
		if err != nil {
			return domain.TradePatch{}, err
		}
		patch.TradeDate = &date
	}

	return patch, nil
}

// TradeOutput represents a trade in API responses
type TradeOutput struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Date          string   `json:"date"`
	Pair          string   `json:"pair"`
	TradeType     string   `json:"trade_type"`
	EntryPrice    float64  `json:"entry_price"`
	ExitPrice     *float64 `json:"exit_price"`
	Quantity      float64  `json:"quantity"`
	StopLoss      *float64 `json:"stop_loss"`
	TakeProfit    *float64 `json:"take_profit"`
	RiskAmount    *float64 `json:"risk_amount"`
	PnL           *float64 `json:"pnl"`
	Comments      *string  `json:"comments"`
	ChartImageURL *string  `json:"chart_image_url"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// FromTrade converts a domain trade to its API shape
func FromTrade(trade *domain.Trade) TradeOutput {
	return TradeOutput{
		ID:            trade.ID.String(),
		UserID:        trade.UserID.String(),
		Date:          trade.TradeDate.String(),
		Pair:          trade.Pair,
		TradeType:     trade.TradeType,
		EntryPrice:    trade.EntryPrice,
		ExitPrice:     trade.ExitPrice,
		Quantity:      trade.Quantity,
		StopLoss:      trade.StopLoss,
		TakeProfit:    trade.TakeProfit,
		RiskAmount:    trade.RiskAmount,
		PnL:           trade.PnL,
		Comments:      trade.Comments,
		ChartImageURL: trade.ChartImageURL,
		CreatedAt:     trade.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     trade.UpdatedAt.Format(time.RFC3339),
	}
}

// FromTrades converts a trade list to its API shape
func FromTrades(trades []*domain.Trade) []TradeOutput {
	output := make([]TradeOutput, 0, len(trades))
	for _, trade := range trades {
		output = append(output, FromTrade(trade))
	}
	return output
}
