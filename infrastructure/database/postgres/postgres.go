package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/migration"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool do Postgres e garante o schema dos ledgers
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if err := migration.Up(migration.DialectPostgres, cfg.DSN); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o PostgreSQL")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com o PostgreSQL")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
