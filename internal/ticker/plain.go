package ticker

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// Fetcher busca o snapshot mais recente
type Fetcher interface {
	Fetch(ctx context.Context) (domain.Snapshot, error)
}

// Plain imprime uma linha por tick, sem tela cheia. Útil em logs e pipes.
type Plain struct {
	fetcher Fetcher
	out     io.Writer
	poll    time.Duration
	tick    time.Duration
	now     func() time.Time

	mu      sync.Mutex
	live    *Live
	lastErr error
}

func NewPlain(fetcher Fetcher, out io.Writer, poll, tick time.Duration) *Plain {
	return &Plain{
		fetcher: fetcher,
		out:     out,
		poll:    poll,
		tick:    tick,
		now:     time.Now,
	}
}

// Refresh busca um novo snapshot. Em caso de erro o último snapshot continua valendo.
func (p *Plain) Refresh(ctx context.Context) error {
	snapshot, err := p.fetcher.Fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.lastErr = err
		return err
	}

	p.live = &Live{Snapshot: snapshot, ReceivedAt: p.now()}
	p.lastErr = nil
	return nil
}

// Line formata os valores extrapolados para o instante atual
func (p *Plain) Line() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live == nil {
		if p.lastErr != nil {
			return fmt.Sprintf("waiting for data (%v)", p.lastErr)
		}
		return "waiting for data"
	}

	f := p.live.At(p.now())
	line := fmt.Sprintf(
		"%s  revenue today %s month %s year %s | expenses today %s month %s year %s | %s %s",
		p.now().Format("15:04:05"),
		FormatAmount(f.RevenueToday), FormatAmount(f.RevenueMonth), FormatAmount(f.RevenueYear),
		FormatAmount(f.ExpensesToday), FormatAmount(f.ExpensesMonth), FormatAmount(f.ExpensesYear),
		NetLabel(f), FormatNet(f.Net()),
	)
	if p.lastErr != nil {
		line += " (stale)"
	}
	return line
}

// Run agenda a busca e a impressão com gocron até ctx ser cancelado
func (p *Plain) Run(ctx context.Context) error {
	s := gocron.NewScheduler(time.Local)
	s.SingletonModeAll()

	_, err := s.Every(p.poll).Do(func() {
		if err := p.Refresh(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao buscar snapshot, mantendo o anterior")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar busca: %w", err)
	}

	_, err = s.Every(p.tick).Do(func() {
		fmt.Fprintln(p.out, p.Line())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar impressão: %w", err)
	}

	s.StartAsync()
	log.ForContext(ctx).Infof("Ticker iniciado: busca a cada %s, atualização a cada %s", p.poll, p.tick)

	<-ctx.Done()
	s.Stop()
	return nil
}
