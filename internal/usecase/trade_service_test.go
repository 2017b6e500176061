package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/domain"
)

// fakeTradeRepo is an in-memory TradeRepository mirroring the real
// store's ownership and partial-update semantics.
type fakeTradeRepo struct {
	trades map[uuid.UUID]*domain.Trade
	order  []uuid.UUID
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: make(map[uuid.UUID]*domain.Trade)}
}

func (f *fakeTradeRepo) Create(ctx context.Context, trade *domain.Trade) error {
	stored := *trade
	f.trades[stored.ID] = &stored
	f.order = append(f.order, stored.ID)
	return nil
}

func (f *fakeTradeRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Trade, error) {
	var out []*domain.Trade
	for _, id := range f.order {
		if trade, ok := f.trades[id]; ok && trade.UserID == userID {
			copied := *trade
			out = append(out, &copied)
		}
	}
	// Date descending, insertion order within a day.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TradeDate.After(out[j].TradeDate)
	})
	return out, nil
}

func (f *fakeTradeRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Trade, error) {
	trade, ok := f.trades[id]
	if !ok || trade.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *trade
	return &copied, nil
}

func (f *fakeTradeRepo) Update(ctx context.Context, id, userID uuid.UUID, patch domain.TradePatch) (*domain.Trade, error) {
	trade, ok := f.trades[id]
	if !ok || trade.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if patch.TradeDate != nil {
		trade.TradeDate = *patch.TradeDate
	}
	if patch.Pair != nil {
		trade.Pair = *patch.Pair
	}
	if patch.TradeType != nil {
		trade.TradeType = *patch.TradeType
	}
	if patch.EntryPrice != nil {
		trade.EntryPrice = *patch.EntryPrice
	}
	if patch.ExitPrice != nil {
		trade.ExitPrice = patch.ExitPrice
	}
	if patch.Quantity != nil {
		trade.Quantity = *patch.Quantity
	}
	if patch.StopLoss != nil {
		trade.StopLoss = patch.StopLoss
	}
	if patch.TakeProfit != nil {
		trade.TakeProfit = patch.TakeProfit
	}
	if patch.RiskAmount != nil {
		trade.RiskAmount = patch.RiskAmount
	}
	if patch.PnL != nil {
		trade.PnL = patch.PnL
	}
	if patch.Comments != nil {
		trade.Comments = patch.Comments
	}
	if patch.ChartImageURL != nil {
		trade.ChartImageURL = patch.ChartImageURL
	}
	trade.UpdatedAt = time.Now().UTC()

	copied := *trade
	return &copied, nil
}

func (f *fakeTradeRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	trade, ok := f.trades[id]
	if !ok || trade.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.trades, id)
	return nil
}

func (f *fakeTradeRepo) ListChartImageRefs(ctx context.Context) (map[string]struct{}, error) {
	refs := make(map[string]struct{})
	for _, trade := range f.trades {
		if trade.ChartImageURL != nil {
			refs[*trade.ChartImageURL] = struct{}{}
		}
	}
	return refs, nil
}

func float64Ptr(v float64) *float64 { return &v }

func newTestTrade(date string) *domain.Trade {
	parsed, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return &domain.Trade{
		TradeDate:  parsed,
		Pair:       "EURUSD",
		TradeType:  domain.TradeTypeLong,
		EntryPrice: 1.1000,
		Quantity:   2.5,
		StopLoss:   float64Ptr(1.0950),
	}
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, newTestTrade("2024-01-15"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, owner, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListSortsByDateDescending(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.Create(ctx, owner, newTestTrade("2024-01-15"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, newTestTrade("2024-01-20"))
	require.NoError(t, err)

	trades, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "2024-01-20", trades[0].TradeDate.String())
	assert.Equal(t, "2024-01-15", trades[1].TradeDate.String())
}

func TestOwnershipIsolation(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(ctx, alice, newTestTrade("2024-01-15"))
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, bob)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, created.ID, bob, domain.TradePatch{PnL: float64Ptr(999)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, created.ID, bob)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Alice's trade is untouched by all of Bob's attempts.
	got, err := svc.Get(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Nil(t, got.PnL)

	bobTrades, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobTrades)
}

func TestPartialUpdateTouchesOnlySuppliedFields(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, newTestTrade("2024-01-15"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, owner, domain.TradePatch{PnL: float64Ptr(700)})
	require.NoError(t, err)

	require.NotNil(t, updated.PnL)
	assert.Equal(t, 700.0, *updated.PnL)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Everything else stays identical to the prior state.
	assert.Equal(t, created.TradeDate, updated.TradeDate)
	assert.Equal(t, created.Pair, updated.Pair)
	assert.Equal(t, created.TradeType, updated.TradeType)
	assert.Equal(t, created.EntryPrice, updated.EntryPrice)
	assert.Equal(t, created.Quantity, updated.Quantity)
	assert.Equal(t, created.StopLoss, updated.StopLoss)
	assert.Nil(t, updated.ExitPrice)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateNilFieldsDoNotClear(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	owner := uuid.New()

	trade := newTestTrade("2024-01-15")
	trade.PnL = float64Ptr(150)
	created, err := svc.Create(ctx, owner, trade)
	require.NoError(t, err)

	comment := "late entry"
	updated, err := svc.Update(ctx, created.ID, owner, domain.TradePatch{Comments: &comment})
	require.NoError(t, err)

	require.NotNil(t, updated.PnL, "unsupplied optional field must survive the update")
	assert.Equal(t, 150.0, *updated.PnL)
	require.NotNil(t, updated.Comments)
	assert.Equal(t, "late entry", *updated.Comments)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	repo := newFakeTradeRepo()
	svc := NewTradeService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, newTestTrade("2024-01-15"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, owner))

	_, err = svc.Get(ctx, created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
