package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// FileBackend implements Backend as one JSON file per key inside a data
// directory. A shared lock file guards against a second butler process
// writing concurrently; writes go through tmp+rename so a crash never leaves
// a half-written record.
type FileBackend struct {
	dir      string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// NewFileBackend creates the data directory if needed and prepares the lock.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir cannot be empty")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileBackend{
		dir:      dir,
		fileLock: flock.New(filepath.Join(dir, ".lock")),
	}, nil
}

// Get reads the record file for key, or returns nil if it does not exist.
func (f *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return data, nil
}

// Put writes the record file for key atomically.
func (f *FileBackend) Put(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename record %q: %w", key, err)
	}
	return nil
}

// Close removes the lock file.
func (f *FileBackend) Close() error {
	_ = os.Remove(f.fileLock.Path())
	return nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBackend) acquire(ctx context.Context) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	locked, err := f.fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = f.fileLock.Unlock() }, nil
}
