package cachestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is how often lock acquisition is retried while another
// process holds the advisory lock.
const lockRetryDelay = 10 * time.Millisecond

// DefaultDir is the default cache base directory, one ".cache" file per
// context underneath it.
const DefaultDir = "storage/cache/rutas"

const cacheExt = ".cache"

// File persists snapshots as one JSON file per context. Writes take an
// exclusive advisory OS lock on the file so two processes sharing a
// context cannot interleave; reads take a shared lock. There is no
// in-process coordination beyond that.
type File struct {
	path string
	lock *flock.Flock
}

// NewFile creates a file store for the context under dir, creating dir if
// needed. The snapshot lives at <dir>/<context>.cache.
func NewFile(dir, context string) (*File, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create cache dir %q: %w", ErrCacheWrite, dir, err)
	}

	path := filepath.Join(dir, context+cacheExt)
	return &File{
		path: path,
		lock: flock.New(path),
	}, nil
}

// Load reads and decodes the snapshot. A missing file yields (nil, nil).
func (f *File) Load(ctx context.Context) (*Snapshot, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil, nil
	}

	locked, err := f.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return nil, fmt.Errorf("%w: lock %q: %w", ErrCacheRead, f.path, err)
	}
	defer f.lock.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCacheRead, f.path, err)
	}

	return decodeSnapshot(data, f.path)
}

// Save writes the snapshot under an exclusive lock. A failed write is
// fatal for the call.
func (f *File) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrCacheWrite, f.path, err)
	}

	locked, err := f.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return fmt.Errorf("%w: lock %q: %w", ErrCacheWrite, f.path, err)
	}
	defer f.lock.Unlock()

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCacheWrite, f.path, err)
	}
	return nil
}

// Clear deletes the snapshot file. Deleting an absent file is not an
// error; any other deletion failure is fatal for the call.
func (f *File) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %q: %w", ErrCacheClear, f.path, err)
	}
	return nil
}

// Location returns the snapshot file path.
func (f *File) Location() string {
	return f.path
}

func decodeSnapshot(data []byte, location string) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSnapshotFormat, location, err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %q has version %d, want %d", ErrSnapshotVersion, location, snap.Version, SnapshotVersion)
	}
	return &snap, nil
}

var _ Store = (*File)(nil)
