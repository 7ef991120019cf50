// Package store owns the tracked item list and the settings record, with
// durable persistence on every mutation.
package store

import "context"

// Persisted record keys. The two records are stored as JSON text under these
// fixed keys regardless of backend.
const (
	KeyItems    = "expiry_butler_items"
	KeySettings = "expiry_butler_settings"
)

// Backend is a durable local key-value store. Get returns (nil, nil) when the
// key has never been written. Put must be durable before it returns.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
