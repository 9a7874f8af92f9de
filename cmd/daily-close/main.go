package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/notifier"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/accrual"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ledgering"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var flagOnce bool

var rootCmd = &cobra.Command{
	Use:   "daily-close",
	Short: "Publica o resumo diário dos ledgers no AMQP",
	Long: `Agenda o fechamento diário com DAILY_CLOSE_CRON no fuso do TZ_OFFSET_HOURS e
publica o resumo do dia anterior no exchange AMQP_EXCHANGE. Com --once executa
uma vez e sai.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagOnce, "once", false, "executa o fechamento uma vez e sai")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	if cfg.AMQP.URL == "" {
		return errors.New("AMQP_URL é obrigatório para o fechamento diário")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, err := notifier.New(cfg.AMQP)
	if err != nil {
		return err
	}
	defer publisher.Close()

	policy, err := accrual.NewPolicy(cfg.Accrual.RevenueMode, cfg.Accrual.DailyPriority)
	if err != nil {
		return err
	}

	location := cfg.Accrual.Location()
	calculator := accrual.NewCalculator(policy, cfg.Accrual.DefaultMonthlyExpenses, location)
	ledgerService := ledgering.NewService(repository.NewLedgerRepository(store, cfg.Ledger), publisher, calculator)

	service := scheduler.NewDailyCloseService(ledgerService, publisher, cfg.Scheduler, location)

	if flagOnce {
		service.Run(ctx)
		if status := service.Status(); status.LastError != "" {
			return errors.New(status.LastError)
		}
		return nil
	}

	if err := service.Start(ctx); err != nil {
		return err
	}
	logrus.Info("Agendador de fechamento diário iniciado")

	<-ctx.Done()
	logrus.Info("Sinal de interrupção recebido, encerrando")
	return nil
}
