package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks

type LedgerRepository interface {
	// LoadAll lê os três ledgers em uma única leitura do armazenamento
	LoadAll(ctx context.Context) (accrual.Ledgers, error)
	LoadMonthly(ctx context.Context, kind domain.LedgerKind) (domain.MonthlyLedger, error)
	LoadDaily(ctx context.Context) (domain.DailyLedger, error)
	SaveMonthly(ctx context.Context, kind domain.LedgerKind, ledger domain.MonthlyLedger) error
	SaveDaily(ctx context.Context, ledger domain.DailyLedger) error
}

// revenueBlob é o formato do blob de receita: os meses ficam aninhados em "months"
type revenueBlob struct {
	Months domain.MonthlyLedger `json:"months"`
}

type ledgerRepository struct {
	store kvstore.BlobStore
	keys  config.Ledger
}

func NewLedgerRepository(store kvstore.BlobStore, keys config.Ledger) LedgerRepository {
	return &ledgerRepository{
		store: store,
		keys:  keys,
	}
}

func (r *ledgerRepository) LoadAll(ctx context.Context) (accrual.Ledgers, error) {
	blobs, err := r.store.GetMany(ctx, r.keys.RevenueKey, r.keys.ExpensesKey, r.keys.DailyKey)
	if err != nil {
		return accrual.Ledgers{}, err
	}

	revenue, err := decodeRevenue(blobs[r.keys.RevenueKey])
	if err != nil {
		return accrual.Ledgers{}, err
	}

	expenses, err := decodeExpenses(blobs[r.keys.ExpensesKey])
	if err != nil {
		return accrual.Ledgers{}, err
	}

	daily, err := decodeDaily(blobs[r.keys.DailyKey])
	if err != nil {
		return accrual.Ledgers{}, err
	}

	return accrual.Ledgers{
		Revenue:  revenue,
		Expenses: expenses,
		Daily:    daily,
	}, nil
}

func (r *ledgerRepository) LoadMonthly(ctx context.Context, kind domain.LedgerKind) (domain.MonthlyLedger, error) {
	switch kind {
	case domain.LedgerRevenue:
		raw, err := r.store.Get(ctx, r.keys.RevenueKey)
		if err != nil {
			return nil, err
		}
		return decodeRevenue(raw)
	case domain.LedgerExpenses:
		raw, err := r.store.Get(ctx, r.keys.ExpensesKey)
		if err != nil {
			return nil, err
		}
		return decodeExpenses(raw)
	default:
		return nil, errors.Errorf("ledger mensal desconhecido: %s", kind)
	}
}

func (r *ledgerRepository) LoadDaily(ctx context.Context) (domain.DailyLedger, error) {
	raw, err := r.store.Get(ctx, r.keys.DailyKey)
	if err != nil {
		return nil, err
	}

	return decodeDaily(raw)
}

func (r *ledgerRepository) SaveMonthly(ctx context.Context, kind domain.LedgerKind, ledger domain.MonthlyLedger) error {
	if ledger == nil {
		ledger = domain.NewMonthlyLedger()
	}

	switch kind {
	case domain.LedgerRevenue:
		raw, err := json.Marshal(revenueBlob{Months: ledger})
		if err != nil {
			return err
		}
		return r.store.Set(ctx, r.keys.RevenueKey, raw)
	case domain.LedgerExpenses:
		raw, err := json.Marshal(ledger)
		if err != nil {
			return err
		}
		return r.store.Set(ctx, r.keys.ExpensesKey, raw)
	default:
		return errors.Errorf("ledger mensal desconhecido: %s", kind)
	}
}

func (r *ledgerRepository) SaveDaily(ctx context.Context, ledger domain.DailyLedger) error {
	if ledger == nil {
		ledger = domain.NewDailyLedger()
	}

	raw, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.keys.DailyKey, raw)
}

func decodeRevenue(raw []byte) (domain.MonthlyLedger, error) {
	blob := revenueBlob{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &blob); err != nil {
			return nil, errors.Wrap(err, "blob de receita inválido")
		}
	}

	if blob.Months == nil {
		blob.Months = domain.NewMonthlyLedger()
	}
	return blob.Months, nil
}

// Blob ausente ou "null" vira ledger vazio
func decodeExpenses(raw []byte) (domain.MonthlyLedger, error) {
	var ledger domain.MonthlyLedger
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ledger); err != nil {
			return nil, errors.Wrap(err, "blob de despesas inválido")
		}
	}

	if ledger == nil {
		ledger = domain.NewMonthlyLedger()
	}
	return ledger, nil
}

func decodeDaily(raw []byte) (domain.DailyLedger, error) {
	var ledger domain.DailyLedger
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ledger); err != nil {
			return nil, errors.Wrap(err, "blob diário inválido")
		}
	}

	if ledger == nil {
		ledger = domain.NewDailyLedger()
	}
	return ledger, nil
}
