package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// CopyResult conta as entradas copiadas por ledger
type CopyResult struct {
	Revenue  int `json:"revenue"`
	Expenses int `json:"expenses"`
	Daily    int `json:"daily"`
}

// CopyLedgers lê os três ledgers de src e grava em dst. Com dryRun só lê e conta.
// Os blobs passam pelos decoders, então um blob corrompido na origem interrompe a cópia
// antes de qualquer escrita.
func CopyLedgers(ctx context.Context, src, dst LedgerRepository, dryRun bool) (CopyResult, error) {
	ledgers, err := src.LoadAll(ctx)
	if err != nil {
		return CopyResult{}, errors.Wrap(err, "erro ao ler ledgers da origem")
	}

	result := CopyResult{
		Revenue:  len(ledgers.Revenue),
		Expenses: len(ledgers.Expenses),
		Daily:    len(ledgers.Daily),
	}

	logrus.WithFields(logrus.Fields{
		"revenue":  result.Revenue,
		"expenses": result.Expenses,
		"daily":    result.Daily,
		"dry_run":  dryRun,
	}).Info("Ledgers lidos da origem")

	if dryRun {
		return result, nil
	}

	if err := saveAll(ctx, dst, ledgers); err != nil {
		return result, err
	}

	return result, nil
}

func saveAll(ctx context.Context, dst LedgerRepository, ledgers accrual.Ledgers) error {
	if err := dst.SaveMonthly(ctx, domain.LedgerRevenue, ledgers.Revenue); err != nil {
		return errors.Wrap(err, "erro ao gravar receita no destino")
	}
	if err := dst.SaveMonthly(ctx, domain.LedgerExpenses, ledgers.Expenses); err != nil {
		return errors.Wrap(err, "erro ao gravar despesas no destino")
	}
	if err := dst.SaveDaily(ctx, ledgers.Daily); err != nil {
		return errors.Wrap(err, "erro ao gravar lançamentos diários no destino")
	}
	return nil
}
