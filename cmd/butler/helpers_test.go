package main

import (
	"context"
	"testing"
	"time"

	"butler/internal/common"
	"butler/internal/model"
	"butler/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveItem(t *testing.T) {
	ctx := context.Background()
	st := store.New(store.NewMemoryBackend())

	imported := []model.Item{
		{ID: "aaaa1111-0000-0000-0000-000000000000", Name: "First",
			Category: model.CategoryFood, ExpiryDate: model.NewTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "aaaa2222-0000-0000-0000-000000000000", Name: "Second",
			Category: model.CategoryFood, ExpiryDate: model.NewTime(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))},
	}
	require.NoError(t, st.ReplaceAll(ctx, imported, nil))

	t.Run("full id", func(t *testing.T) {
		item, err := resolveItem(st, "aaaa1111-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Equal(t, "First", item.Name)
	})

	t.Run("unique prefix", func(t *testing.T) {
		item, err := resolveItem(st, "aaaa2222")
		require.NoError(t, err)
		assert.Equal(t, "Second", item.Name)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := resolveItem(st, "aaaa")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("no match", func(t *testing.T) {
		_, err := resolveItem(st, "zzzz")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
