package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLiteBackend, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "butler.db")
	backend, err := NewSQLiteBackend(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend, dbPath
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteBackend("")
		require.Error(t, err)
	})

	t.Run("absent key reads as nil", func(t *testing.T) {
		backend, _ := newTestSQLite(t)

		data, err := backend.Get(ctx, KeyItems)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("put then get round trips", func(t *testing.T) {
		backend, _ := newTestSQLite(t)

		require.NoError(t, backend.Put(ctx, KeyItems, []byte(`[{"id":"a"}]`)))

		data, err := backend.Get(ctx, KeyItems)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"a"}]`), data)
	})

	t.Run("put upserts", func(t *testing.T) {
		backend, _ := newTestSQLite(t)

		require.NoError(t, backend.Put(ctx, KeySettings, []byte(`{"currency":"TWD"}`)))
		require.NoError(t, backend.Put(ctx, KeySettings, []byte(`{"currency":"USD"}`)))

		data, err := backend.Get(ctx, KeySettings)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"currency":"USD"}`), data)
	})

	t.Run("keys are independent", func(t *testing.T) {
		backend, _ := newTestSQLite(t)

		require.NoError(t, backend.Put(ctx, KeyItems, []byte(`[]`)))

		data, err := backend.Get(ctx, KeySettings)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("state survives reopen", func(t *testing.T) {
		backend, dbPath := newTestSQLite(t)

		require.NoError(t, backend.Put(ctx, KeyItems, []byte(`[{"id":"a"}]`)))
		require.NoError(t, backend.Close())

		reopened, err := NewSQLiteBackend(dbPath)
		require.NoError(t, err)
		defer func() { _ = reopened.Close() }()

		data, err := reopened.Get(ctx, KeyItems)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"a"}]`), data)
	})
}
