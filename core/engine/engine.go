package engine

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/rutas-dev/rutas/core/cachestore"
	"github.com/rutas-dev/rutas/core/config"
	"github.com/rutas-dev/rutas/core/logger"
	"github.com/rutas-dev/rutas/core/metrics"
	"github.com/rutas-dev/rutas/core/registry"
	"github.com/rutas-dev/rutas/core/route"
	"github.com/rutas-dev/rutas/core/trie"
)

// Config holds the env-driven engine defaults.
type Config struct {
	CacheDir string `env:"RUTAS_CACHE_DIR" envDefault:"storage/cache/rutas"`
	AutoSave bool   `env:"RUTAS_AUTOSAVE" envDefault:"true"`
}

var contextSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SanitizeContext strips every character outside [A-Za-z0-9_-] from name.
// An empty result sanitizes to "default".
func SanitizeContext(name string) string {
	clean := contextSanitizer.ReplaceAllString(name, "")
	if clean == "" {
		return "default"
	}
	return clean
}

// Engine is the sole owner of one route tree and the cache location for
// its context.
type Engine struct {
	id       uuid.UUID
	context  string
	root     *trie.Node
	store    cachestore.Store
	registry *registry.Registry
	log      *slog.Logger
	metrics  *metrics.Metrics
	autoSave bool
	strict   bool
}

// New constructs an engine bound to the sanitized context and eagerly
// loads any existing cache snapshot into the tree. A load failure
// (unreadable cache, malformed snapshot, or a record failing insertion
// validation) fails construction; the engine never falls back to an
// empty tree. When no snapshot exists yet the cache is initialized with
// the current (empty) route list.
func New(contextName string, opts ...Option) (*Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		id:       uuid.New(),
		context:  SanitizeContext(contextName),
		root:     trie.NewNode(),
		registry: o.registry,
		log:      o.log,
		metrics:  o.metrics,
		strict:   o.strict,
	}
	if e.registry == nil {
		e.registry = registry.New()
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	e.log = e.log.With(
		logger.Component("engine"),
		logger.Context(e.context),
		slog.String("engine_id", e.id.String()),
	)

	var cfg Config
	if o.store == nil || o.autoSave == nil {
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
	}

	if o.autoSave != nil {
		e.autoSave = *o.autoSave
	} else {
		e.autoSave = cfg.AutoSave
	}

	e.store = o.store
	if e.store == nil {
		dir := o.cacheDir
		if dir == "" {
			dir = cfg.CacheDir
		}
		store, err := cachestore.NewFile(dir, e.context)
		if err != nil {
			return nil, err
		}
		e.store = store
	}

	loaded, err := e.loadCache()
	if err != nil {
		return nil, err
	}
	if !loaded {
		// Initialize the cache file for a fresh context.
		if err := e.SaveCache(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Context returns the sanitized context name.
func (e *Engine) Context() string {
	return e.context
}

// CacheLocation returns where this context's snapshot lives.
func (e *Engine) CacheLocation() string {
	return e.store.Location()
}

// Len returns the number of registered routes.
func (e *Engine) Len() int {
	return e.root.Len()
}

// AddRoute validates method, action, and URI (in that order), merges the
// record into the tree, and persists the full route list when auto-save
// is on. Re-registering an identical (method, uri, action) is a silent
// no-op. Registering a different action for an occupied (method, uri)
// keeps the first writer: the conflict is logged and, by default,
// swallowed (WithStrictConflicts turns it into ErrRouteConflict).
func (e *Engine) AddRoute(method, uri string, action any, middleware ...any) error {
	m, err := route.ParseMethod(method)
	if err != nil {
		return fmt.Errorf("add route %q %q: %w", method, uri, err)
	}

	act, err := e.registry.ResolveAction(action)
	if err != nil {
		return fmt.Errorf("add route %s %q: %w", m, uri, err)
	}

	chain, err := e.registry.ResolveMiddleware(middleware...)
	if err != nil {
		return fmt.Errorf("add route %s %q: %w", m, uri, err)
	}

	if err := route.ValidateURI(uri); err != nil {
		return fmt.Errorf("add route %s: %w", m, err)
	}

	rec := &route.Record{
		Method:     m,
		URI:        uri,
		Action:     act,
		Middleware: chain,
	}

	switch e.root.Insert(route.SplitURI(uri), rec) {
	case trie.Stored:
		e.metrics.RouteInserted(e.context)
		e.log.Debug("route added", logger.Method(string(m)), logger.URI(uri))
		if e.autoSave {
			return e.SaveCache()
		}
	case trie.Duplicate:
		// idempotent re-registration
	case trie.Conflict:
		e.metrics.RouteConflict(e.context)
		e.log.Warn("duplicate route ignored, first registration wins",
			logger.Method(string(m)), logger.URI(uri))
		if e.strict {
			return fmt.Errorf("%w: %s %q", ErrRouteConflict, m, uri)
		}
	}
	return nil
}

// Match resolves (method, uri) to a registered record plus extracted path
// parameters. A missing route is a normal negative result (ok == false),
// not an error; errors are reserved for invalid input.
func (e *Engine) Match(method, uri string) (trie.Match, bool, error) {
	m, err := route.ParseMethod(method)
	if err != nil {
		return trie.Match{}, false, fmt.Errorf("match %q %q: %w", method, uri, err)
	}
	if err := route.ValidateURI(uri); err != nil {
		return trie.Match{}, false, fmt.Errorf("match %s: %w", m, err)
	}

	match, ok := e.root.Match(m, route.SplitURI(uri))
	e.metrics.Match(e.context, ok)
	return match, ok, nil
}

// Find resolves (method, uri) by exact segment keys only, with no
// parameter matching. It backs the minimal reference dispatcher.
func (e *Engine) Find(method, uri string) (*route.Record, bool, error) {
	m, err := route.ParseMethod(method)
	if err != nil {
		return nil, false, fmt.Errorf("find %q %q: %w", method, uri, err)
	}
	if err := route.ValidateURI(uri); err != nil {
		return nil, false, fmt.Errorf("find %s: %w", m, err)
	}

	rec, ok := e.root.Lookup(m, route.SplitURI(uri))
	return rec, ok, nil
}

// ExportRoutes returns the flat route list in deterministic traversal
// order, with each URI rewritten to the path actually stored in the
// tree. This is the only surface framework bridges consume.
func (e *Engine) ExportRoutes() []route.Record {
	return e.root.Export()
}

// SaveCache serializes the full exported route list to the cache store.
// Records with anonymous actions have no serializable identity and are
// skipped with a warning. A failed write is fatal for the call.
func (e *Engine) SaveCache() error {
	defs, skipped := e.definitions()
	if skipped > 0 {
		e.log.Warn("skipping unserializable routes in cache snapshot",
			logger.Count("skipped", skipped), logger.Cache(e.store.Location()))
	}

	snap := cachestore.NewSnapshot(e.context, defs)
	if err := e.store.Save(context.Background(), snap); err != nil {
		return err
	}
	e.metrics.CacheSaved(e.context)
	return nil
}

// ClearCache deletes the stored snapshot and immediately recreates it
// from the in-memory tree. Clearing never empties the in-memory route
// table; a failed deletion is fatal for the call.
func (e *Engine) ClearCache() error {
	if err := e.store.Clear(context.Background()); err != nil {
		return err
	}
	e.log.Info("cache cleared", logger.Cache(e.store.Location()))
	return e.SaveCache()
}

// LoadCache merges the stored snapshot into the tree, re-running full
// insertion validation for every record. New constructs call it
// implicitly; calling it again re-applies the snapshot (idempotent for
// records already present).
func (e *Engine) LoadCache() error {
	_, err := e.loadCache()
	return err
}

// loadCache reports whether a snapshot existed.
func (e *Engine) loadCache() (bool, error) {
	snap, err := e.store.Load(context.Background())
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}

	// Suppress per-record persistence while replaying the snapshot.
	autoSave := e.autoSave
	e.autoSave = false
	defer func() { e.autoSave = autoSave }()

	for _, def := range snap.Routes {
		if err := e.addDefinition(def); err != nil {
			return true, fmt.Errorf("load cache %q: %w", e.store.Location(), err)
		}
	}

	e.metrics.CacheLoaded(e.context)
	e.log.Debug("cache loaded",
		logger.Cache(e.store.Location()), logger.Count("routes", len(snap.Routes)))
	return true, nil
}

func (e *Engine) addDefinition(def route.Definition) error {
	method := def.Method
	if method == "" {
		method = string(route.MethodGet)
	}

	middleware := make([]any, 0, len(def.Middleware))
	for _, name := range def.Middleware {
		middleware = append(middleware, name)
	}

	return e.AddRoute(method, def.URI, def.Action, middleware...)
}

// definitions converts the exported route list to its interchange shape,
// dropping records whose action has no registry identifier.
func (e *Engine) definitions() ([]route.Definition, int) {
	records := e.root.Export()
	defs := make([]route.Definition, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if rec.Action.Name == "" {
			skipped++
			continue
		}
		defs = append(defs, rec.Definition())
	}
	return defs, skipped
}
