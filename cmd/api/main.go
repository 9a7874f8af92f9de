package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/notifier"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/api"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ledgering"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Inicializa configuração de logs
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := kvstore.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao inicializar armazenamento %s", cfg.Store.Driver)
	}
	defer store.Close()

	publisher, err := notifier.New(cfg.AMQP)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar no AMQP")
	}
	defer publisher.Close()

	policy, err := accrual.NewPolicy(cfg.Accrual.RevenueMode, cfg.Accrual.DailyPriority)
	if err != nil {
		logrus.Fatal(err)
	}

	calculator := accrual.NewCalculator(policy, cfg.Accrual.DefaultMonthlyExpenses, cfg.Accrual.Location())
	logrus.WithFields(logrus.Fields{
		"policy":           policy.String(),
		"location":         calculator.Location().String(),
		"default_expenses": cfg.Accrual.DefaultMonthlyExpenses,
	}).Info("Calculadora de acúmulo configurada")

	ledgerRepo := repository.NewLedgerRepository(store, cfg.Ledger)
	ledgerService := ledgering.NewService(ledgerRepo, publisher, calculator)

	authenticator := authenticating.NewService(cfg.Auth, cfg.SecretKey)

	server, err := api.New(cfg, ledgerService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

