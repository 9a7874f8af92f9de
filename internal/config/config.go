package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados para os blobs dos ledgers
const (
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Store     Store     `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Ledger    Ledger    `mapstructure:",squash"`
	Accrual   Accrual   `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	AMQP      AMQP      `mapstructure:",squash"`
	Scheduler Scheduler `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Store struct {
	Driver     string `mapstructure:"store_driver"`
	RedisURL   string `mapstructure:"redis_url"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Ledger contém as chaves fixas dos blobs no armazenamento
type Ledger struct {
	RevenueKey  string `mapstructure:"ledger_revenue_key"`
	ExpensesKey string `mapstructure:"ledger_expenses_key"`
	DailyKey    string `mapstructure:"ledger_daily_key"`
}

type Accrual struct {
	TZOffsetHours          int     `mapstructure:"tz_offset_hours"`
	RevenueMode            string  `mapstructure:"revenue_mode"`
	DailyPriority          bool    `mapstructure:"daily_priority"`
	DefaultMonthlyExpenses float64 `mapstructure:"default_monthly_expenses"`
}

// Location retorna o fuso fixo usado em todos os cálculos de calendário
func (a Accrual) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", a.TZOffsetHours), a.TZOffsetHours*60*60)
}

type Auth struct {
	Enabled           bool          `mapstructure:"auth_enabled"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

type AMQP struct {
	URL        string `mapstructure:"amqp_url"`
	Exchange   string `mapstructure:"amqp_exchange"`
	RoutingKey string `mapstructure:"amqp_routing_key"`
}

// Scheduler configura o processo de fechamento diário (cmd/daily-close). O cron é avaliado
// no fuso fixo do Accrual.
type Scheduler struct {
	DailyCloseCron string `mapstructure:"daily_close_cron"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("STORE_DRIVER", StoreDriverRedis)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SQLITE_PATH", "data/ledgers.db")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Chaves compatíveis com os blobs já existentes no Redis
	viper.SetDefault("LEDGER_REVENUE_KEY", "corbitt_revenue")
	viper.SetDefault("LEDGER_EXPENSES_KEY", "corbitt_expenses")
	viper.SetDefault("LEDGER_DAILY_KEY", "corbitt_daily")

	viper.SetDefault("TZ_OFFSET_HOURS", 3) // Arábia Saudita (UTC+3)
	viper.SetDefault("REVENUE_MODE", "lag-grace")
	viper.SetDefault("DAILY_PRIORITY", true)
	viper.SetDefault("DEFAULT_MONTHLY_EXPENSES", 1080000)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "dashboard")
	viper.SetDefault("AMQP_ROUTING_KEY", "ledger.changed")

	viper.SetDefault("DAILY_CLOSE_CRON", "5 0 * * *") // 00:05 no fuso do Accrual
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Store.Driver = strings.ToLower(strings.TrimSpace(config.Store.Driver))
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que impediriam o servidor de atender requisições
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL é obrigatório para o driver %s", c.Store.Driver)
		}
	case StoreDriverPostgres, StoreDriverMemory:
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH é obrigatório para o driver %s", c.Store.Driver)
		}
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q (use redis, postgres, sqlite ou memory)", c.Store.Driver)
	}

	switch strings.ToLower(c.Accrual.RevenueMode) {
	case "direct", "lag", "lag-grace":
	default:
		return fmt.Errorf("REVENUE_MODE inválido: %q (use direct, lag ou lag-grace)", c.Accrual.RevenueMode)
	}

	if c.Accrual.TZOffsetHours < -12 || c.Accrual.TZOffsetHours > 14 {
		return fmt.Errorf("TZ_OFFSET_HOURS fora do intervalo: %d", c.Accrual.TZOffsetHours)
	}

	if c.Accrual.DefaultMonthlyExpenses < 0 {
		return fmt.Errorf("DEFAULT_MONTHLY_EXPENSES não pode ser negativo")
	}

	if c.Ledger.RevenueKey == "" || c.Ledger.ExpensesKey == "" || c.Ledger.DailyKey == "" {
		return fmt.Errorf("as chaves dos ledgers não podem ser vazias")
	}

	if c.Auth.Enabled && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH é obrigatório quando AUTH_ENABLED=true")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
