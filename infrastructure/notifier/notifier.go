// Package notifier avisa consumidores externos quando um ledger é alterado
package notifier

import (
	"context"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mocks/notifier_mock.go -package=mocks

type Publisher interface {
	PublishLedgerChanged(ctx context.Context, change domain.LedgerChange) error
	PublishDailyClose(ctx context.Context, summary domain.DailyClose) error
	Close() error
}

// Noop é usado quando AMQP_URL não está configurada
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) PublishLedgerChanged(context.Context, domain.LedgerChange) error {
	return nil
}

func (Noop) PublishDailyClose(context.Context, domain.DailyClose) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
