package kvstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/sqlite"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

// New escolhe o armazenamento pelo STORE_DRIVER configurado
func New(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	logrus.WithField("driver", cfg.Store.Driver).Info("Inicializando armazenamento dos ledgers")

	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		return NewRedisStore(ctx, cfg.Store.RedisURL)
	case config.StoreDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(conn.DB, squirrel.Dollar), nil
	case config.StoreDriverSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(conn.DB, squirrel.Question), nil
	case config.StoreDriverMemory:
		logrus.Warn("Armazenamento em memória: os ledgers serão perdidos ao reiniciar")
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("driver de armazenamento desconhecido: %s", cfg.Store.Driver)
	}
}
