package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trade represents a single logged position owned by one user
type Trade struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	TradeDate     Date      `json:"date"`
	Pair          string    `json:"pair"`
	TradeType     string    `json:"trade_type"`
	EntryPrice    float64   `json:"entry_price"`
	ExitPrice     *float64  `json:"exit_price,omitempty"`
	Quantity      float64   `json:"quantity"`
	StopLoss      *float64  `json:"stop_loss,omitempty"`
	TakeProfit    *float64  `json:"take_profit,omitempty"`
	RiskAmount    *float64  `json:"risk_amount,omitempty"`
	PnL           *float64  `json:"pnl,omitempty"`
	Comments      *string   `json:"comments,omitempty"`
	ChartImageURL *string   `json:"chart_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TradeType constants
const (
	TradeTypeLong  = "Long"
	TradeTypeShort = "Short"
)

// TradePatch carries the fields of a partial trade update. A nil field
// means "not supplied" and leaves the stored value untouched; there is
// no way to clear an optional field back to empty.
type TradePatch struct {
	TradeDate     *Date
	Pair          *string
	TradeType     *string
	EntryPrice    *float64
	ExitPrice     *float64
	Quantity      *float64
	StopLoss      *float64
	TakeProfit    *float64
	RiskAmount    *float64
	PnL           *float64
	Comments      *string
	ChartImageURL *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p TradePatch) IsEmpty() bool {
	return p.TradeDate == nil && p.Pair == nil && p.TradeType == nil &&
		p.EntryPrice == nil && p.ExitPrice == nil && p.Quantity == nil &&
		p.StopLoss == nil && p.TakeProfit == nil && p.RiskAmount == nil &&
		p.PnL == nil && p.Comments == nil && p.ChartImageURL == nil
}
