package storage_test

import (
	"context"
	"testing"

	"github.com/alejandrodnm/betplay/internal/adapters/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	db, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	err = db.Save(ctx, "betplay.profile.v1", []byte(`{"totalPoints":1000}`))
	require.NoError(t, err)

	data, err := db.Load(ctx, "betplay.profile.v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalPoints":1000}`, string(data))
}

func TestSQLiteStore_LoadMissingKey(t *testing.T) {
	db, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer db.Close()

	data, err := db.Load(context.Background(), "never.written")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	db, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	require.NoError(t, db.Save(ctx, "k", []byte("v1")))
	require.NoError(t, db.Save(ctx, "k", []byte("v2")))

	data, err := db.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestMemoryStore_Isolation(t *testing.T) {
	m := storage.NewMemoryStore()
	ctx := context.Background()

	payload := []byte("original")
	require.NoError(t, m.Save(ctx, "k", payload))

	// Mutating the caller's slice must not leak into the store.
	payload[0] = 'X'
	data, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}
