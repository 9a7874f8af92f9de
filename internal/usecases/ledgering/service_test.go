package ledgering

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	notifiermocks "github.com/vfg2006/revenue-dashboard-api/infrastructure/notifier/mocks"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var riyadh = time.FixedZone("UTC+3", 3*60*60)

// 05/03/2025 10:00 em UTC+3
var fixedNow = time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC)

type fixture struct {
	repo      *mocks.MockLedgerRepository
	publisher *notifiermocks.MockPublisher
	service   *Service
}

func newFixture(t *testing.T, now time.Time) fixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockLedgerRepository(ctrl)
	publisher := notifiermocks.NewMockPublisher(ctrl)
	calculator := accrual.NewCalculator(accrual.DefaultPolicy(), 1080000, riyadh)

	return fixture{
		repo:      repo,
		publisher: publisher,
		service: NewService(repo, publisher, calculator, WithClock(func() time.Time {
			return now
		})),
	}
}

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func requireLedgerError(t *testing.T, err error, code, message string) {
	t.Helper()

	require.Error(t, err)
	ledgerErr := AsLedgerError(err)
	assert.Equal(t, code, ledgerErr.Code)
	assert.Equal(t, message, ledgerErr.Message)
}

func TestService_GetSnapshot(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadAll(gomock.Any()).Return(accrual.Ledgers{
		Revenue: domain.MonthlyLedger{"2025-02": 280000},
	}, nil)

	snapshot, err := f.service.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-05T10:00:00+03:00", snapshot.ServerTime)
	assert.Equal(t, 2025, snapshot.Year)
	assert.Equal(t, 3, snapshot.Month)
	assert.Equal(t, 5, snapshot.Day)
	assert.Equal(t, "lag-grace", snapshot.RevenueMode)
	assert.Equal(t, "2025-02", snapshot.RevenueSource)
	assert.Equal(t, domain.MonthlyLedger{"2025-02": 280000}, snapshot.Months)
	assert.NotNil(t, snapshot.Days)
}

func TestService_GetSnapshotAtIgnoresClock(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadAll(gomock.Any()).Return(accrual.Ledgers{}, nil)

	// 23:59:59 de 31/12/2024 em UTC+3
	snapshot, err := f.service.GetSnapshotAt(context.Background(), time.Date(2024, 12, 31, 20, 59, 59, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2024-12-31T23:59:59+03:00", snapshot.ServerTime)
	assert.Equal(t, 2024, snapshot.Year)
	assert.Equal(t, 12, snapshot.Month)
	assert.Equal(t, 31, snapshot.Day)
}

func TestService_GetSnapshotStoreFailure(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadAll(gomock.Any()).Return(accrual.Ledgers{}, errors.New("connection refused"))

	_, err := f.service.GetSnapshot(context.Background())

	requireLedgerError(t, err, apiErrors.ErrStoreOperation, "Server error")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, IsValidationError(err))
}

func TestService_SetMonthlyValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.LedgerKind
		req     domain.SetMonthlyRequest
		message string
	}{
		{
			name:    "chave vazia",
			kind:    domain.LedgerRevenue,
			req:     domain.SetMonthlyRequest{Amount: raw(`10`)},
			message: "Invalid monthKey format. Use YYYY-MM",
		},
		{
			name:    "mês inexistente",
			kind:    domain.LedgerRevenue,
			req:     domain.SetMonthlyRequest{MonthKey: "2025-13", Amount: raw(`10`)},
			message: "Invalid monthKey format. Use YYYY-MM",
		},
		{
			name:    "formato com barra",
			kind:    domain.LedgerExpenses,
			req:     domain.SetMonthlyRequest{MonthKey: "2025/01", Amount: raw(`10`)},
			message: "Invalid monthKey format. Use YYYY-MM",
		},
		{
			name:    "valor negativo",
			kind:    domain.LedgerRevenue,
			req:     domain.SetMonthlyRequest{MonthKey: "2025-01", Amount: raw(`-5`)},
			message: "Invalid amount",
		},
		{
			name:    "valor não numérico",
			kind:    domain.LedgerRevenue,
			req:     domain.SetMonthlyRequest{MonthKey: "2025-01", Amount: raw(`"abc"`)},
			message: "Invalid amount",
		},
		{
			name:    "valor ausente",
			kind:    domain.LedgerExpenses,
			req:     domain.SetMonthlyRequest{MonthKey: "2025-01"},
			message: "Invalid amount",
		},
		{
			name:    "ledger diário não aceita escrita mensal",
			kind:    domain.LedgerDaily,
			req:     domain.SetMonthlyRequest{MonthKey: "2025-01", Amount: raw(`10`)},
			message: "Invalid type. Use revenue or expenses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nenhuma chamada ao repositório é esperada
			f := newFixture(t, fixedNow)

			ledger, err := f.service.SetMonthly(context.Background(), tt.kind, tt.req)

			assert.Nil(t, ledger)
			requireLedgerError(t, err, apiErrors.ErrInvalidFormat, tt.message)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_SetMonthlyUpserts(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadMonthly(gomock.Any(), domain.LedgerExpenses).
		Return(domain.MonthlyLedger{"2025-01": 900000}, nil)
	f.repo.EXPECT().SaveMonthly(gomock.Any(), domain.LedgerExpenses,
		domain.MonthlyLedger{"2025-01": 900000, "2025-02": 1500.5}).Return(nil)
	f.publisher.EXPECT().PublishLedgerChanged(gomock.Any(), domain.LedgerChange{
		Ledger:    domain.LedgerExpenses,
		Key:       "2025-02",
		Amount:    1500.5,
		ChangedAt: "2025-03-05T10:00:00+03:00",
	}).Return(nil)

	ledger, err := f.service.SetMonthly(context.Background(), domain.LedgerExpenses, domain.SetMonthlyRequest{
		MonthKey: "2025-02",
		Amount:   raw(`"1500.50"`),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MonthlyLedger{"2025-01": 900000, "2025-02": 1500.5}, ledger)
}

func TestService_SetMonthlyZeroDeletes(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadMonthly(gomock.Any(), domain.LedgerRevenue).
		Return(domain.MonthlyLedger{"2025-01": 100, "2025-02": 200}, nil)
	f.repo.EXPECT().SaveMonthly(gomock.Any(), domain.LedgerRevenue, domain.MonthlyLedger{"2025-02": 200}).Return(nil)
	f.publisher.EXPECT().PublishLedgerChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change domain.LedgerChange) error {
			assert.True(t, change.Deleted)
			assert.Equal(t, "2025-01", change.Key)
			return nil
		})

	ledger, err := f.service.SetMonthly(context.Background(), domain.LedgerRevenue, domain.SetMonthlyRequest{
		MonthKey: "2025-01",
		Amount:   raw(`0`),
	})

	require.NoError(t, err)
	assert.NotContains(t, ledger, "2025-01")
}

func TestService_SetMonthlyStoreFailure(t *testing.T) {
	t.Run("falha na leitura", func(t *testing.T) {
		f := newFixture(t, fixedNow)

		f.repo.EXPECT().LoadMonthly(gomock.Any(), domain.LedgerRevenue).Return(nil, errors.New("timeout"))

		_, err := f.service.SetMonthly(context.Background(), domain.LedgerRevenue, domain.SetMonthlyRequest{
			MonthKey: "2025-01",
			Amount:   raw(`10`),
		})

		requireLedgerError(t, err, apiErrors.ErrStoreOperation, "Server error")
	})

	t.Run("falha na gravação não publica evento", func(t *testing.T) {
		f := newFixture(t, fixedNow)

		f.repo.EXPECT().LoadMonthly(gomock.Any(), domain.LedgerRevenue).Return(domain.MonthlyLedger{}, nil)
		f.repo.EXPECT().SaveMonthly(gomock.Any(), domain.LedgerRevenue, gomock.Any()).Return(errors.New("timeout"))

		_, err := f.service.SetMonthly(context.Background(), domain.LedgerRevenue, domain.SetMonthlyRequest{
			MonthKey: "2025-01",
			Amount:   raw(`10`),
		})

		requireLedgerError(t, err, apiErrors.ErrStoreOperation, "Server error")
		assert.Contains(t, err.Error(), "timeout")
	})
}

func TestService_PublisherFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t, fixedNow)

	f.repo.EXPECT().LoadDaily(gomock.Any()).Return(domain.DailyLedger{}, nil)
	f.repo.EXPECT().SaveDaily(gomock.Any(), domain.DailyLedger{"2025-03-04": 12000}).Return(nil)
	f.publisher.EXPECT().PublishLedgerChanged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	ledger, err := f.service.SetDaily(context.Background(), domain.SetDailyRequest{
		Date:   "2025-03-04",
		Amount: raw(`12000`),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DailyLedger{"2025-03-04": 12000}, ledger)
}

func TestService_SetDailyRejectsTodayAndFuture(t *testing.T) {
	// 22:00 UTC do dia 04 já é dia 05 em UTC+3
	now := time.Date(2025, 3, 4, 22, 0, 0, 0, time.UTC)

	for _, date := range []string{"2025-03-05", "2025-03-06", "2026-01-01"} {
		t.Run(date, func(t *testing.T) {
			f := newFixture(t, now)

			_, err := f.service.SetDaily(context.Background(), domain.SetDailyRequest{
				Date:   date,
				Amount: raw(`10`),
			})

			requireLedgerError(t, err, apiErrors.ErrDateNotInPast, "Cannot enter data for today or future dates")
			assert.ErrorIs(t, err, ErrDateNotInPast)
		})
	}

	t.Run("ontem é aceito", func(t *testing.T) {
		f := newFixture(t, now)

		f.repo.EXPECT().LoadDaily(gomock.Any()).Return(domain.DailyLedger{}, nil)
		f.repo.EXPECT().SaveDaily(gomock.Any(), domain.DailyLedger{"2025-03-04": 10}).Return(nil)
		f.publisher.EXPECT().PublishLedgerChanged(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.SetDaily(context.Background(), domain.SetDailyRequest{
			Date:   "2025-03-04",
			Amount: raw(`10`),
		})

		require.NoError(t, err)
	})
}

func TestService_SetDailyValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.SetDailyRequest
		message string
	}{
		{"data inexistente", domain.SetDailyRequest{Date: "2025-02-30", Amount: raw(`1`)}, "Invalid date format. Use YYYY-MM-DD"},
		{"formato curto", domain.SetDailyRequest{Date: "2025-3-1", Amount: raw(`1`)}, "Invalid date format. Use YYYY-MM-DD"},
		{"valor infinito", domain.SetDailyRequest{Date: "2025-03-01", Amount: raw(`1e400`)}, "Invalid amount"},
		{"valor nulo", domain.SetDailyRequest{Date: "2025-03-01", Amount: raw(`null`)}, "Invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, fixedNow)

			_, err := f.service.SetDaily(context.Background(), tt.req)

			requireLedgerError(t, err, apiErrors.ErrInvalidFormat, tt.message)
		})
	}
}

func TestService_WritesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewLedgerRepository(store, config.Ledger{
		RevenueKey:  "corbitt_revenue",
		ExpensesKey: "corbitt_expenses",
		DailyKey:    "corbitt_daily",
	})
	calculator := accrual.NewCalculator(accrual.DefaultPolicy(), 1080000, riyadh)
	service := NewService(repo, nil, calculator, WithClock(func() time.Time { return fixedNow }))

	req := domain.SetMonthlyRequest{MonthKey: "2025-02", Amount: raw(`280000`)}

	_, err := service.SetMonthly(ctx, domain.LedgerRevenue, req)
	require.NoError(t, err)
	first, _ := store.Get(ctx, "corbitt_revenue")

	_, err = service.SetMonthly(ctx, domain.LedgerRevenue, req)
	require.NoError(t, err)
	second, _ := store.Get(ctx, "corbitt_revenue")

	assert.JSONEq(t, string(first), string(second))
	assert.JSONEq(t, `{"months":{"2025-02":280000}}`, string(second))

	snapshot, err := service.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 280000.0/(31*86400), snapshot.RevPerSecond, 1e-9)
}
