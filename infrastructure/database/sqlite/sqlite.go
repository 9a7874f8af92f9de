package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/migration"
	_ "modernc.org/sqlite"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre (ou cria) o arquivo SQLite e aplica as migrações
func NewConnection(ctx context.Context, path string) (*Connection, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório do banco SQLite")
	}

	if err := migration.Up(migration.DialectSQLite, path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir banco SQLite")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com o SQLite")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
