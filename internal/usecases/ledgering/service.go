// Package ledgering lê o snapshot calculado e grava os lançamentos nos ledgers
package ledgering

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/infrastructure/notifier"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type Ledgering interface {
	GetSnapshot(ctx context.Context) (domain.Snapshot, error)
	GetSnapshotAt(ctx context.Context, at time.Time) (domain.Snapshot, error)
	SetMonthly(ctx context.Context, kind domain.LedgerKind, req domain.SetMonthlyRequest) (domain.MonthlyLedger, error)
	SetDaily(ctx context.Context, req domain.SetDailyRequest) (domain.DailyLedger, error)
}

type Service struct {
	repo       repository.LedgerRepository
	publisher  notifier.Publisher
	calculator *accrual.Calculator
	now        func() time.Time
}

type Option func(*Service)

// WithClock troca o relógio usado para o "agora" de cada requisição
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	repo repository.LedgerRepository,
	publisher notifier.Publisher,
	calculator *accrual.Calculator,
	opts ...Option,
) *Service {
	s := &Service{
		repo:       repo,
		publisher:  publisher,
		calculator: calculator,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.publisher == nil {
		s.publisher = notifier.NewNoop()
	}

	return s
}

func (s *Service) GetSnapshot(ctx context.Context) (domain.Snapshot, error) {
	return s.GetSnapshotAt(ctx, s.now())
}

// GetSnapshotAt calcula o snapshot para um instante arbitrário, como o fim de um dia já encerrado
func (s *Service) GetSnapshotAt(ctx context.Context, at time.Time) (domain.Snapshot, error) {
	ledgers, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Snapshot{}, newStoreError(err)
	}

	return s.calculator.Snapshot(ledgers, at), nil
}

// SetMonthly grava (ou remove, quando zero) o total de um mês no ledger de receita ou despesa
func (s *Service) SetMonthly(ctx context.Context, kind domain.LedgerKind, req domain.SetMonthlyRequest) (domain.MonthlyLedger, error) {
	if kind != domain.LedgerRevenue && kind != domain.LedgerExpenses {
		return nil, InvalidType(nil)
	}

	if _, err := domain.ParseMonthKey(req.MonthKey); err != nil {
		return nil, newValidationError(err, apiErrors.ErrInvalidFormat, msgInvalidMonthKey)
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, newValidationError(err, apiErrors.ErrInvalidFormat, msgInvalidAmount)
	}

	ledger, err := s.repo.LoadMonthly(ctx, kind)
	if err != nil {
		return nil, newStoreError(err)
	}

	ledger.Put(req.MonthKey, amount)

	if err := s.repo.SaveMonthly(ctx, kind, ledger); err != nil {
		return nil, newStoreError(err)
	}

	s.notify(ctx, kind, req.MonthKey, amount)

	return ledger, nil
}

// SetDaily grava o total de um dia já encerrado. Hoje e datas futuras são rejeitados.
func (s *Service) SetDaily(ctx context.Context, req domain.SetDailyRequest) (domain.DailyLedger, error) {
	if _, err := domain.ParseDayKey(req.Date); err != nil {
		return nil, newValidationError(err, apiErrors.ErrInvalidFormat, msgInvalidDate)
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, newValidationError(err, apiErrors.ErrInvalidFormat, msgInvalidAmount)
	}

	today := s.calculator.Instant(s.now())
	if req.Date >= today.Current.DayKey(today.Day) {
		return nil, newValidationError(ErrDateNotInPast, apiErrors.ErrDateNotInPast, msgDateNotInPast)
	}

	ledger, err := s.repo.LoadDaily(ctx)
	if err != nil {
		return nil, newStoreError(err)
	}

	ledger.Put(req.Date, amount)

	if err := s.repo.SaveDaily(ctx, ledger); err != nil {
		return nil, newStoreError(err)
	}

	s.notify(ctx, domain.LedgerDaily, req.Date, amount)

	return ledger, nil
}

// notify não falha a escrita: o ledger já foi persistido
func (s *Service) notify(ctx context.Context, kind domain.LedgerKind, key string, amount float64) {
	change := domain.LedgerChange{
		Ledger:    kind,
		Key:       key,
		Amount:    amount,
		Deleted:   amount == 0,
		ChangedAt: s.now().In(s.calculator.Location()).Format(time.RFC3339),
	}

	if err := s.publisher.PublishLedgerChanged(ctx, change); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"ledger": kind,
			"key":    key,
		}).Warn("ledgering: falha ao publicar alteração do ledger")
	}
}
