package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-dashboard-api/internal/ticker"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var (
	flagConfig   string
	flagURL      string
	flagPoll     time.Duration
	flagTick     time.Duration
	flagPlain    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ticker",
	Short: "Painel de receita e despesa em tempo real no terminal",
	Long: `Busca o snapshot do servidor periodicamente e avança os valores a cada
segundo usando as taxas por segundo. Sem --plain abre a tela cheia.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", ticker.ConfigPath(), "arquivo de configuração TOML")
	rootCmd.Flags().StringVar(&flagURL, "url", "", "endereço do servidor (sobrescreve o arquivo)")
	rootCmd.Flags().DurationVar(&flagPoll, "poll", 0, "intervalo entre buscas (ex: 5m)")
	rootCmd.Flags().DurationVar(&flagTick, "tick", 0, "intervalo de atualização da tela (ex: 1s)")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "imprime uma linha por tick em vez da tela cheia")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "nível de log")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log.Setup(flagLogLevel)

	cfg, err := ticker.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagURL != "" {
		cfg.Server.BaseURL = flagURL
	}
	if flagPoll > 0 {
		cfg.Refresh.PollSeconds = int(flagPoll / time.Second)
	}
	if flagTick > 0 {
		cfg.Refresh.TickSeconds = int(flagTick / time.Second)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := ticker.NewClient(cfg.Server.BaseURL, nil)

	if flagPlain {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		plain := ticker.NewPlain(client, cmd.OutOrStdout(), cfg.PollInterval(), cfg.TickInterval())
		return plain.Run(ctx)
	}

	model := ticker.NewModel(client, cfg.PollInterval(), cfg.TickInterval())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("erro na interface: %w", err)
	}
	return nil
}

