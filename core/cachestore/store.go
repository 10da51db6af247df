// Package cachestore persists route table snapshots so registration work
// is not repeated across process restarts. A snapshot is a versioned
// envelope around the flat route list produced by the engine's export
// walk; stores treat it as opaque beyond the envelope itself.
//
// Two backends are provided: a file store (one file per context, written
// under an exclusive advisory OS lock) and a Redis store (one key per
// context). Both serialize the same JSON schema, so a snapshot written by
// one can be inspected by the other's tooling.
package cachestore

import (
	"context"
	"errors"

	"github.com/rutas-dev/rutas/core/route"
)

// SnapshotVersion is the current on-disk schema version. Load rejects
// anything else, so a cache written by a different implementation fails
// loudly instead of being silently misread.
const SnapshotVersion = 1

var (
	// ErrSnapshotFormat is returned when cache content is not a versioned
	// route list envelope.
	ErrSnapshotFormat = errors.New("malformed cache snapshot")
	// ErrSnapshotVersion is returned when a snapshot carries an
	// unsupported schema version.
	ErrSnapshotVersion = errors.New("unsupported cache snapshot version")
	// ErrCacheRead is returned when a cache backend cannot be read.
	ErrCacheRead = errors.New("cache read failed")
	// ErrCacheWrite is returned when a cache backend cannot be written.
	ErrCacheWrite = errors.New("cache write failed")
	// ErrCacheClear is returned when a cache backend cannot be cleared.
	ErrCacheClear = errors.New("cache clear failed")
)

// Snapshot is the serialized route table for one context.
type Snapshot struct {
	Version int                `json:"version"`
	Context string             `json:"context"`
	Routes  []route.Definition `json:"routes"`
}

// NewSnapshot builds a current-version snapshot.
func NewSnapshot(context string, routes []route.Definition) *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Context: context,
		Routes:  routes,
	}
}

// Store persists snapshots for a single context. Implementations own
// their location exclusively; the engine is the only writer.
type Store interface {
	// Load returns the stored snapshot, or (nil, nil) when none exists.
	// A present but malformed snapshot is an error, never an empty result.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Clear removes the stored snapshot. Clearing an absent snapshot is
	// not an error.
	Clear(ctx context.Context) error

	// Location describes where the snapshot lives (file path, Redis key)
	// for diagnostics.
	Location() string
}
