package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"butler/internal/common"
	"butler/internal/config"
	"butler/internal/model"
	"butler/internal/store"
	"butler/internal/vision"

	"github.com/spf13/viper"
)

// dataDir resolves the configured data directory.
func dataDir() string {
	if path := config.ExpandPath(viper.GetString("storage.path")); path != "" {
		return path
	}
	return config.DefaultDataDir()
}

// newBackend builds the configured storage backend.
func newBackend() (store.Backend, error) {
	dir := dataDir()
	switch backend := viper.GetString("storage.backend"); backend {
	case "", "sqlite":
		return store.NewSQLiteBackend(filepath.Join(dir, "butler.db"))
	case "file":
		return store.NewFileBackend(dir)
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, backend)
	}
}

// openStore loads the store. Corrupt persisted state is preserved next to the
// data directory for diagnostics and the command continues on an empty store
// rather than crashing.
func openStore(ctx context.Context) (*store.Store, error) {
	backend, err := newBackend()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, backend)
	if err != nil {
		var corrupt *common.CorruptStateError
		if !errors.As(err, &corrupt) {
			_ = backend.Close()
			return nil, err
		}

		preserved := filepath.Join(dataDir(),
			fmt.Sprintf("%s.corrupt-%d.json", corrupt.Key, time.Now().Unix()))
		if writeErr := os.WriteFile(preserved, corrupt.Raw, 0600); writeErr != nil {
			slog.Error("failed to preserve corrupt state", "key", corrupt.Key, "error", writeErr)
		} else {
			slog.Warn("persisted state is corrupt; starting from an empty store",
				"key", corrupt.Key, "preserved", preserved, "error", corrupt.Err)
		}
		st = store.New(backend)
	}

	return st, nil
}

// resolveItem finds an item by full id or unique id prefix.
func resolveItem(st *store.Store, ref string) (model.Item, error) {
	var matches []model.Item
	for _, item := range st.Items() {
		if item.ID == ref {
			return item, nil
		}
		if strings.HasPrefix(item.ID, ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Item{}, common.ErrNotFound
	default:
		return model.Item{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// newVisionClient builds the image analysis client from configuration.
func newVisionClient() (vision.Client, error) {
	apiKey := viper.GetString("ai.api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set ai.api_key or BUTLER_AI_API_KEY", common.ErrMissingConfig)
	}

	return vision.NewClient(vision.Config{
		APIKey:  apiKey,
		Model:   viper.GetString("ai.model"),
		BaseURL: viper.GetString("ai.base_url"),
	})
}
