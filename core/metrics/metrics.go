// Package metrics exposes Prometheus collectors for route table activity.
// It is optional: a nil *Metrics is a valid no-op recorder, so the engine
// can call it unconditionally.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for one engine (or a shared set
// across engines, distinguished by the context label).
type Metrics struct {
	routesInserted *prometheus.CounterVec
	routeConflicts *prometheus.CounterVec
	matches        *prometheus.CounterVec
	cacheSaves     *prometheus.CounterVec
	cacheLoads     *prometheus.CounterVec
}

// New registers the collectors with reg (prometheus.DefaultRegisterer
// when nil) and returns the recorder.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		routesInserted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rutas",
			Name:      "routes_inserted_total",
			Help:      "Route records stored in the trie",
		}, []string{"context"}),

		routeConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rutas",
			Name:      "route_conflicts_total",
			Help:      "Duplicate registrations dropped in favor of the first writer",
		}, []string{"context"}),

		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rutas",
			Name:      "matches_total",
			Help:      "Match lookups by result",
		}, []string{"context", "result"}),

		cacheSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rutas",
			Name:      "cache_saves_total",
			Help:      "Route table snapshots written to the cache store",
		}, []string{"context"}),

		cacheLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rutas",
			Name:      "cache_loads_total",
			Help:      "Route table snapshots loaded from the cache store",
		}, []string{"context"}),
	}
}

// RouteInserted records a stored route.
func (m *Metrics) RouteInserted(context string) {
	if m == nil {
		return
	}
	m.routesInserted.WithLabelValues(context).Inc()
}

// RouteConflict records a dropped duplicate registration.
func (m *Metrics) RouteConflict(context string) {
	if m == nil {
		return
	}
	m.routeConflicts.WithLabelValues(context).Inc()
}

// Match records a lookup result ("hit" or "miss").
func (m *Metrics) Match(context string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.matches.WithLabelValues(context, result).Inc()
}

// CacheSaved records a snapshot write.
func (m *Metrics) CacheSaved(context string) {
	if m == nil {
		return
	}
	m.cacheSaves.WithLabelValues(context).Inc()
}

// CacheLoaded records a snapshot load.
func (m *Metrics) CacheLoaded(context string) {
	if m == nil {
		return
	}
	m.cacheLoads.WithLabelValues(context).Inc()
}
