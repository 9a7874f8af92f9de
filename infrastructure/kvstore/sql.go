package kvstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const blobsTable = "ledger_blobs"

// SQLStore guarda os blobs na tabela ledger_blobs (Postgres ou SQLite)
type SQLStore struct {
	db          *sql.DB
	placeholder squirrel.PlaceholderFormat
}

// NewSQLStore recebe a conexão já migrada. Postgres usa squirrel.Dollar, SQLite squirrel.Question.
func NewSQLStore(db *sql.DB, placeholder squirrel.PlaceholderFormat) *SQLStore {
	return &SQLStore{
		db:          db,
		placeholder: placeholder,
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(blobsTable).
		Where(squirrel.Eq{"blob_key": key}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler a chave %s", key)
	}

	return []byte(value), nil
}

func (s *SQLStore) GetMany(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query, args, err := squirrel.
		Select("blob_key", "value").
		From(blobsTable).
		Where(squirrel.Eq{"blob_key": keys}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler os ledgers")
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de ledger")
		}
		out[key] = []byte(value)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar os ledgers")
	}

	return out, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(blobsTable).
		Columns("blob_key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (blob_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar a chave %s", key)
	}

	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
