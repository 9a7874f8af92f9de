// Package migration aplica o schema da tabela de blobs dos ledgers nos bancos SQL
package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Up aplica as migrações pendentes. Usa uma conexão própria porque o migrate fecha o
// banco ao terminar.
func Up(dialect, dsn string) error {
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return errors.Wrap(err, "erro ao abrir conexão de migração")
	}

	var driver database.Driver
	switch dialect {
	case DialectPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case DialectSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		db.Close()
		return errors.Errorf("dialeto de migração não suportado: %s", dialect)
	}
	if err != nil {
		db.Close()
		return errors.Wrap(err, "erro ao criar driver de migração")
	}

	source, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		driver.Close()
		return errors.Wrap(err, "erro ao carregar arquivos de migração")
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		driver.Close()
		return errors.Wrap(err, "erro ao criar instância de migração")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "erro ao executar migrações")
	}

	version, dirty, _ := m.Version()
	logrus.WithFields(logrus.Fields{
		"dialect": dialect,
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas")

	return nil
}
