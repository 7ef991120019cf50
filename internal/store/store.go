package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"butler/internal/common"
	"butler/internal/model"

	"github.com/google/uuid"
)

// Store is the single source of truth for tracked items and settings. Every
// mutation is written to the backend before it is applied in memory, so a
// mutation either fully applies or leaves both views unchanged.
type Store struct {
	backend  Backend
	items    []model.Item
	settings model.Settings
}

// New creates an empty store with default settings on top of backend. Nothing
// is persisted until the first mutation.
func New(backend Backend) *Store {
	return &Store{
		backend:  backend,
		settings: model.DefaultSettings(),
	}
}

// Open loads persisted state from backend. Missing records initialize to an
// empty list and default settings. A record that exists but cannot be parsed
// surfaces as *common.CorruptStateError carrying the raw payload; the store
// is not returned in that case.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	s := New(backend)

	raw, err := backend.Get(ctx, KeyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if raw != nil {
		var items []model.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &common.CorruptStateError{Key: KeyItems, Raw: raw, Err: err}
		}
		s.items = items
	}

	raw, err = backend.Get(ctx, KeySettings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if raw != nil {
		var settings model.Settings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, &common.CorruptStateError{Key: KeySettings, Raw: raw, Err: err}
		}
		s.settings = settings
	}

	slog.Debug("store opened", "items", len(s.items))
	return s, nil
}

// Items returns a snapshot copy of the item list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Settings returns the current settings record.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// Get returns the item with the given id, or common.ErrNotFound.
func (s *Store) Get(id string) (model.Item, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.Item{}, common.ErrNotFound
}

// Create validates the draft, assigns a fresh id and creation timestamp,
// persists, and returns the finished item.
func (s *Store) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	if err := draft.Validate(); err != nil {
		return model.Item{}, err
	}

	item := model.Item{
		ID:           uuid.NewString(),
		Name:         draft.Name,
		Category:     draft.Category,
		ExpiryDate:   draft.ExpiryDate,
		ReminderDays: draft.ReminderDays,
		Notes:        draft.Notes,
		Amount:       draft.Amount,
		Cycle:        draft.Cycle,
		IsAutoRenew:  draft.IsAutoRenew,
		PurchaseDate: draft.PurchaseDate,
		CreatedAt:    model.NewTime(time.Now()),
	}

	next := append(s.Items(), item)
	if err := s.persistItems(ctx, next); err != nil {
		return model.Item{}, err
	}
	s.items = next

	slog.Info("created item", "id", item.ID, "name", item.Name, "category", item.Category)
	return item, nil
}

// Update merges patch onto the item with the given id. Patch fields win,
// omitted fields are retained. Unknown ids return common.ErrNotFound and
// leave the stored list untouched.
func (s *Store) Update(ctx context.Context, id string, patch model.Patch) (model.Item, error) {
	next := s.Items()
	for i, item := range next {
		if item.ID != id {
			continue
		}
		updated := patch.Apply(item)
		next[i] = updated
		if err := s.persistItems(ctx, next); err != nil {
			return model.Item{}, err
		}
		s.items = next

		slog.Info("updated item", "id", id)
		return updated, nil
	}
	return model.Item{}, common.ErrNotFound
}

// Delete removes the item with the given id if present. Deleting an absent id
// is not an error and triggers no write.
func (s *Store) Delete(ctx context.Context, id string) error {
	next := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(s.items) {
		return nil
	}

	if err := s.persistItems(ctx, next); err != nil {
		return err
	}
	s.items = next

	slog.Info("deleted item", "id", id)
	return nil
}

// ReplaceAll swaps the entire item list, and settings when non-nil. Used by
// import; items are trusted beyond structural shape by design.
func (s *Store) ReplaceAll(ctx context.Context, items []model.Item, settings *model.Settings) error {
	next := make([]model.Item, len(items))
	copy(next, items)

	if err := s.persistItems(ctx, next); err != nil {
		return err
	}
	if settings != nil {
		if err := s.persistSettings(ctx, *settings); err != nil {
			return err
		}
		s.settings = *settings
	}
	s.items = next

	slog.Info("replaced store state", "items", len(next), "settings", settings != nil)
	return nil
}

// UpdateSettings replaces the settings record wholesale and persists it.
func (s *Store) UpdateSettings(ctx context.Context, settings model.Settings) error {
	if err := s.persistSettings(ctx, settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) persistItems(ctx context.Context, items []model.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := s.backend.Put(ctx, KeyItems, data); err != nil {
		return fmt.Errorf("failed to persist items: %w", err)
	}
	return nil
}

func (s *Store) persistSettings(ctx context.Context, settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.backend.Put(ctx, KeySettings, data); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
