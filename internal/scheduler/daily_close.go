package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/notifier"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ledgering"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// Status resume a última execução
type Status struct {
	Cron        string `json:"cron"`
	Running     bool   `json:"running"`
	LastDate    string `json:"lastDate,omitempty"`
	StartedAt   string `json:"startedAt,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
	LastError   string `json:"lastError,omitempty"`
}

// DailyCloseService publica o resumo do dia que acabou de fechar no fuso fixo. Roda em
// processo próprio (cmd/daily-close); a API continua sem tarefas em background.
type DailyCloseService struct {
	scheduler *gocron.Scheduler
	config    config.Scheduler
	location  *time.Location
	ledgers   ledgering.Ledgering
	publisher notifier.Publisher
	now       func() time.Time

	mu          sync.Mutex
	running     bool
	lastDate    string
	startedAt   time.Time
	completedAt time.Time
	lastErr     error
}

func NewDailyCloseService(
	ledgers ledgering.Ledgering,
	publisher notifier.Publisher,
	cfg config.Scheduler,
	location *time.Location,
) *DailyCloseService {
	if location == nil {
		location = time.UTC
	}
	if publisher == nil {
		publisher = notifier.NewNoop()
	}

	logrus.WithFields(logrus.Fields{
		"cron":     cfg.DailyCloseCron,
		"location": location.String(),
	}).Info("Configuração do fechamento diário carregada")

	return &DailyCloseService{
		scheduler: gocron.NewScheduler(location),
		config:    cfg,
		location:  location,
		ledgers:   ledgers,
		publisher: publisher,
		now:       time.Now,
	}
}

// Start agenda o fechamento e para o agendador quando ctx for cancelado
func (s *DailyCloseService) Start(ctx context.Context) error {
	_, err := s.scheduler.Cron(s.config.DailyCloseCron).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento diário")
		s.scheduler.Stop()
	}()

	return nil
}

// Run calcula o snapshot e publica o resumo do dia anterior. Execuções concorrentes são ignoradas.
func (s *DailyCloseService) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Fechamento diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.startedAt = s.now()
	s.mu.Unlock()

	summary, err := s.close(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.completedAt = s.now()
	s.lastErr = err

	if err != nil {
		logrus.WithError(err).Error("Erro no fechamento diário")
		return
	}

	s.lastDate = summary.Date
	logrus.WithFields(logrus.Fields{
		"date": summary.Date,
		"net":  summary.Net,
	}).Info("Fechamento diário concluído")
}

// close calcula o snapshot no último segundo do dia anterior, no fuso fixo
func (s *DailyCloseService) close(ctx context.Context) (domain.DailyClose, error) {
	now := s.now().In(s.location)
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location).Add(-time.Second)

	snapshot, err := s.ledgers.GetSnapshotAt(ctx, endOfDay)
	if err != nil {
		return domain.DailyClose{}, fmt.Errorf("erro ao calcular snapshot: %w", err)
	}

	summary := domain.DailyClose{
		Date:          endOfDay.Format(domain.DayKeyLayout),
		RevenueYear:   utils.RoundWithTwoDecimalPlace(snapshot.RevenueYear),
		ExpensesYear:  utils.RoundWithTwoDecimalPlace(snapshot.ExpensesYear),
		Net:           utils.RoundWithTwoDecimalPlace(snapshot.RevenueYear - snapshot.ExpensesYear),
		RevenueMode:   snapshot.RevenueMode,
		RevenueSource: snapshot.RevenueSource,
		ClosedAt:      now.Format(time.RFC3339),
	}

	if err := s.publisher.PublishDailyClose(ctx, summary); err != nil {
		return summary, fmt.Errorf("erro ao publicar fechamento: %w", err)
	}

	return summary, nil
}

func (s *DailyCloseService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		Cron:     s.config.DailyCloseCron,
		Running:  s.running,
		LastDate: s.lastDate,
	}
	if !s.startedAt.IsZero() {
		status.StartedAt = s.startedAt.In(s.location).Format(time.RFC3339)
	}
	if !s.completedAt.IsZero() {
		status.CompletedAt = s.completedAt.In(s.location).Format(time.RFC3339)
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}
