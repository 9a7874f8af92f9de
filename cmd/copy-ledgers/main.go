package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

var (
	flagFrom   string
	flagTo     string
	flagDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "copy-ledgers",
	Short: "Copia os ledgers de um armazenamento para outro",
	Long: `Lê os blobs de receita, despesas e lançamentos diários do driver de origem
e grava no driver de destino, usando as mesmas chaves. As demais variáveis
(REDIS_URL, DATABASE_*, SQLITE_PATH, LEDGER_*_KEY) vêm do ambiente ou do .env.

Exemplo: copy-ledgers --from redis --to postgres`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagFrom, "from", config.StoreDriverRedis, "driver de origem (redis, postgres, sqlite)")
	rootCmd.Flags().StringVar(&flagTo, "to", "", "driver de destino (redis, postgres, sqlite)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "apenas lê a origem e mostra as contagens")
	_ = rootCmd.MarkFlagRequired("to")
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

	from := strings.ToLower(flagFrom)
	to := strings.ToLower(flagTo)
	if from == to {
		return fmt.Errorf("origem e destino são o mesmo driver: %s", from)
	}
	if from == config.StoreDriverMemory || to == config.StoreDriverMemory {
		return fmt.Errorf("o driver memory não pode ser usado na cópia")
	}

	ctx := cmd.Context()

	src, err := openStore(ctx, cfg, from)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openStore(ctx, cfg, to)
	if err != nil {
		return err
	}
	defer dst.Close()

	result, err := repository.CopyLedgers(
		ctx,
		repository.NewLedgerRepository(src, cfg.Ledger),
		repository.NewLedgerRepository(dst, cfg.Ledger),
		flagDryRun,
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"revenue":  result.Revenue,
		"expenses": result.Expenses,
		"daily":    result.Daily,
		"dry_run":  flagDryRun,
	}).Info("Cópia dos ledgers concluída")

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJSON(result))

	return nil
}

func openStore(ctx context.Context, cfg *config.Config, driver string) (kvstore.BlobStore, error) {
	storeCfg := *cfg
	storeCfg.Store.Driver = driver
	if err := storeCfg.Validate(); err != nil {
		return nil, err
	}

	return kvstore.New(ctx, &storeCfg)
}
