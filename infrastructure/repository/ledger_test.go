package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

var testKeys = config.Ledger{
	RevenueKey:  "corbitt_revenue",
	ExpensesKey: "corbitt_expenses",
	DailyKey:    "corbitt_daily",
}

func TestLedgerRepository_LoadAllEmptyStore(t *testing.T) {
	repo := NewLedgerRepository(kvstore.NewMemoryStore(), testKeys)

	ledgers, err := repo.LoadAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, ledgers.Revenue)
	assert.NotNil(t, ledgers.Expenses)
	assert.NotNil(t, ledgers.Daily)
	assert.Empty(t, ledgers.Revenue)
}

func TestLedgerRepository_ReadsExistingBlobs(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "corbitt_revenue", []byte(`{"months":{"2025-01":1500.5}}`)))
	require.NoError(t, store.Set(ctx, "corbitt_expenses", []byte(`{"2025-01":900000}`)))
	require.NoError(t, store.Set(ctx, "corbitt_daily", []byte(`null`)))

	repo := NewLedgerRepository(store, testKeys)

	ledgers, err := repo.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.MonthlyLedger{"2025-01": 1500.5}, ledgers.Revenue)
	assert.Equal(t, domain.MonthlyLedger{"2025-01": 900000}, ledgers.Expenses)
	assert.Empty(t, ledgers.Daily)
}

func TestLedgerRepository_SaveKeepsBlobShapes(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewLedgerRepository(store, testKeys)

	require.NoError(t, repo.SaveMonthly(ctx, domain.LedgerRevenue, domain.MonthlyLedger{"2025-02": 10}))
	require.NoError(t, repo.SaveMonthly(ctx, domain.LedgerExpenses, domain.MonthlyLedger{"2025-02": 20}))
	require.NoError(t, repo.SaveDaily(ctx, domain.DailyLedger{"2025-02-01": 30}))

	raw, _ := store.Get(ctx, "corbitt_revenue")
	assert.JSONEq(t, `{"months":{"2025-02":10}}`, string(raw))

	raw, _ = store.Get(ctx, "corbitt_expenses")
	assert.JSONEq(t, `{"2025-02":20}`, string(raw))

	raw, _ = store.Get(ctx, "corbitt_daily")
	assert.JSONEq(t, `{"2025-02-01":30}`, string(raw))

	revenue, err := repo.LoadMonthly(ctx, domain.LedgerRevenue)
	require.NoError(t, err)
	assert.Equal(t, domain.MonthlyLedger{"2025-02": 10}, revenue)
}

func TestLedgerRepository_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "corbitt_revenue", []byte(`not json`)))

	_, err := NewLedgerRepository(store, testKeys).LoadAll(ctx)
	assert.Error(t, err)
}

func TestLedgerRepository_UnknownKind(t *testing.T) {
	repo := NewLedgerRepository(kvstore.NewMemoryStore(), testKeys)

	err := repo.SaveMonthly(context.Background(), domain.LedgerDaily, domain.MonthlyLedger{})
	assert.Error(t, err)
}
