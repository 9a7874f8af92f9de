package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/sqlite"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()

	conn, err := sqlite.NewConnection(context.Background(), filepath.Join(t.TempDir(), "ledgers.db"))
	require.NoError(t, err)

	store := NewSQLStore(conn.DB, squirrel.Question)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStore_SQLite(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	require.NoError(t, store.Ping(ctx))

	value, err := store.Get(ctx, "corbitt_expenses")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "corbitt_expenses", []byte(`{"2025-01":100}`)))
	require.NoError(t, store.Set(ctx, "corbitt_expenses", []byte(`{"2025-01":200}`)))

	value, err = store.Get(ctx, "corbitt_expenses")
	require.NoError(t, err)
	assert.Equal(t, `{"2025-01":200}`, string(value))

	require.NoError(t, store.Set(ctx, "corbitt_daily", []byte(`{}`)))

	blobs, err := store.GetMany(ctx, "corbitt_revenue", "corbitt_expenses", "corbitt_daily")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"corbitt_expenses": []byte(`{"2025-01":200}`),
		"corbitt_daily":    []byte(`{}`),
	}, blobs)
}
