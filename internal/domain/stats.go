package domain

// Stats summarizes a user's trading performance. TotalPnl and WinRate
// are rounded to 2 decimal places.
type Stats struct {
	TotalTrades   int     `json:"total_trades"`
	TotalPnl      float64 `json:"total_pnl"`
	WinRate       float64 `json:"win_rate"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
}
