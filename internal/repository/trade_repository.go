package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradejournal/internal/domain"
)

// listLimit caps unbounded owner listings defensively.
const listLimit = 1000

const tradeColumns = `id, user_id, trade_date, pair, trade_type, entry_price,
	       exit_price, quantity, stop_loss, take_profit, risk_amount, pnl,
	       comments, chart_image_url, created_at, updated_at`

// TradeRepositoryImpl implements the TradeRepository interface
type TradeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) domain.TradeRepository {
	return &TradeRepositoryImpl{db: db}
}

// Create persists a new trade
func (r *TradeRepositoryImpl) Create(ctx context.Context, trade *domain.Trade) error {
	query := `
		INSERT INTO trades (
			id, user_id, trade_date, pair, trade_type, entry_price,
			exit_price, quantity, stop_loss, take_profit, risk_amount, pnl,
			comments, chart_image_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	_, err := r.db.Exec(ctx, query,
		trade.ID,
		trade.UserID,
		trade.TradeDate.Time(),
		trade.Pair,
		trade.TradeType,
		trade.EntryPrice,
		trade.ExitPrice,
		trade.Quantity,
		trade.StopLoss,
		trade.TakeProfit,
		trade.RiskAmount,
		trade.PnL,
		trade.Comments,
		trade.ChartImageURL,
		trade.CreatedAt,
		trade.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	return nil
}

// ListByUserID retrieves all trades for a user, newest trade date first,
// insertion order within a day
func (r *TradeRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Trade, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trades
		WHERE user_id = $1
		ORDER BY trade_date DESC, created_at ASC
		LIMIT %d
	`, tradeColumns, listLimit)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades by user ID: %w", err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// GetByIDForUser retrieves a trade by ID scoped to its owner
func (r *TradeRepositoryImpl) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Trade, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trades
		WHERE id = $1 AND user_id = $2
	`, tradeColumns)

	trade, err := scanTrade(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade by ID: %w", err)
	}

	return trade, nil
}

// Update applies the supplied patch fields in a single statement and
// returns the persisted post-update record
func (r *TradeRepositoryImpl) Update(ctx context.Context, id, userID uuid.UUID, patch domain.TradePatch) (*domain.Trade, error) {
	sets, args := buildTradePatch(patch)

	// updated_at always refreshes, even for an empty patch.
	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id, userID)
	query := fmt.Sprintf(`
		UPDATE trades
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args)-1, len(args), tradeColumns)

	trade, err := scanTrade(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	return trade, nil
}

// Delete removes a trade scoped to its owner
func (r *TradeRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM trades WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ListChartImageRefs returns every chart image reference attached to a trade
func (r *TradeRepositoryImpl) ListChartImageRefs(ctx context.Context) (map[string]struct{}, error) {
	query := `SELECT DISTINCT chart_image_url FROM trades WHERE chart_image_url IS NOT NULL`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart image refs: %w", err)
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan chart image ref: %w", err)
		}
		refs[ref] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart image refs: %w", err)
	}

	return refs, nil
}

// buildTradePatch translates the supplied patch fields into SET clauses
// and their arguments. Nil fields are skipped, never written as NULL.
func buildTradePatch(patch domain.TradePatch) ([]string, []any) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.TradeDate != nil {
		set("trade_date", patch.TradeDate.Time())
	}
	if patch.Pair != nil {
		set("pair", *patch.Pair)
	}
	if patch.TradeType != nil {
		set("trade_type", *patch.TradeType)
	}
	if patch.EntryPrice != nil {
		set("entry_price", *patch.EntryPrice)
	}
	if patch.ExitPrice != nil {
		set("exit_price", *patch.ExitPrice)
	}
	if patch.Quantity != nil {
		set("quantity", *patch.Quantity)
	}
	if patch.StopLoss != nil {
		set("stop_loss", *patch.StopLoss)
	}
	if patch.TakeProfit != nil {
		set("take_profit", *patch.TakeProfit)
	}
	if patch.RiskAmount != nil {
		set("risk_amount", *patch.RiskAmount)
	}
	if patch.PnL != nil {
		set("pnl", *patch.PnL)
	}
	if patch.Comments != nil {
		set("comments", *patch.Comments)
	}
	if patch.ChartImageURL != nil {
		set("chart_image_url", *patch.ChartImageURL)
	}

	return sets, args
}

// scanTrade scans one trade row, wrapping the DATE column into a domain.Date
func scanTrade(row pgx.Row) (*domain.Trade, error) {
	trade := &domain.Trade{}
	var tradeDate time.Time

	err := row.Scan(
		&trade.ID,
		&trade.UserID,
		&tradeDate,
		&trade.Pair,
		&trade.TradeType,
		&trade.EntryPrice,
		&trade.ExitPrice,
		&trade.Quantity,
		&trade.StopLoss,
		&trade.TakeProfit,
		&trade.RiskAmount,
		&trade.PnL,
		&trade.Comments,
		&trade.ChartImageURL,
		&trade.CreatedAt,
		&trade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	trade.TradeDate = domain.DateOf(tradeDate)
	return trade, nil
}
