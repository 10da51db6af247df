package engine

import (
	"log/slog"

	"github.com/rutas-dev/rutas/core/cachestore"
	"github.com/rutas-dev/rutas/core/metrics"
	"github.com/rutas-dev/rutas/core/registry"
)

type options struct {
	store    cachestore.Store
	cacheDir string
	registry *registry.Registry
	log      *slog.Logger
	metrics  *metrics.Metrics
	autoSave *bool
	strict   bool
}

// Option configures New.
type Option func(*options)

// WithStore replaces the default file store with any cachestore.Store,
// e.g. cachestore.NewRedis. WithCacheDir is ignored when a store is set.
func WithStore(store cachestore.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCacheDir overrides the cache base directory for the default file
// store. The default comes from RUTAS_CACHE_DIR (or storage/cache/rutas).
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithAutoSave toggles persisting the full route list on every successful
// insert. The default comes from RUTAS_AUTOSAVE (or true).
func WithAutoSave(enabled bool) Option {
	return func(o *options) {
		o.autoSave = &enabled
	}
}

// WithStrictConflicts upgrades duplicate-route conflicts from a logged
// diagnostic to a returned ErrRouteConflict. The first registration still
// wins either way.
func WithStrictConflicts() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithRegistry sets the handler registry used to resolve action and
// middleware identifiers. Default is an empty registry, which resolves
// only anonymous funcs.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithLogger sets the diagnostics logger. Default drops everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics attaches Prometheus recorders for route and cache activity.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
