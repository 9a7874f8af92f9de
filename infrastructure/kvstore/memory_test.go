package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value, err := store.Get(ctx, "corbitt_revenue")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "corbitt_revenue", []byte(`{"months":{}}`)))
	require.NoError(t, store.Set(ctx, "corbitt_daily", []byte(`{}`)))

	value, err = store.Get(ctx, "corbitt_revenue")
	require.NoError(t, err)
	assert.Equal(t, `{"months":{}}`, string(value))

	blobs, err := store.GetMany(ctx, "corbitt_revenue", "corbitt_expenses", "corbitt_daily")
	require.NoError(t, err)
	assert.Len(t, blobs, 2)
	assert.NotContains(t, blobs, "corbitt_expenses")

	// o valor retornado é uma cópia
	value[0] = 'x'
	again, _ := store.Get(ctx, "corbitt_revenue")
	assert.Equal(t, `{"months":{}}`, string(again))
}
