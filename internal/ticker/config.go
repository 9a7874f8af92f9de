// Package ticker é o cliente de terminal do painel: busca o snapshot periodicamente e
// avança os valores localmente a cada segundo usando as taxas por segundo.
package ticker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultPollInterval = 5 * time.Minute
	DefaultTickInterval = time.Second
)

// Config do ticker, lida de um arquivo TOML opcional
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Refresh RefreshConfig `toml:"refresh"`
}

type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

type RefreshConfig struct {
	PollSeconds int `toml:"poll_seconds"`
	TickSeconds int `toml:"tick_seconds"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{BaseURL: DefaultBaseURL},
		Refresh: RefreshConfig{
			PollSeconds: int(DefaultPollInterval / time.Second),
			TickSeconds: int(DefaultTickInterval / time.Second),
		},
	}
}

// ConfigPath segue o XDG: $XDG_CONFIG_HOME/revenue-ticker/config.toml
func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "revenue-ticker", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "revenue-ticker", "config.toml")
}

// LoadConfig lê o arquivo sobre os valores padrão. Arquivo ausente não é erro.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("base_url inválida: %q", c.Server.BaseURL)
	}
	if c.Refresh.PollSeconds <= 0 || c.Refresh.TickSeconds <= 0 {
		return fmt.Errorf("poll_seconds e tick_seconds devem ser positivos")
	}
	return nil
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Refresh.PollSeconds) * time.Second
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Refresh.TickSeconds) * time.Second
}
