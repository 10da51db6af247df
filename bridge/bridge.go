// Package bridge defines the contract framework adapters implement: pull
// the engine's exported route list and program a host router with it.
// Bridges never write to the cache or mutate the tree; ExportRoutes is
// their whole surface.
package bridge

// Bridge adapts one engine context onto a host framework's own router.
type Bridge interface {
	// RegisterRoutes programs the host router with every exported
	// (method, uri, action, middleware) tuple.
	RegisterRoutes() error

	// SetContext rebinds the adapter to a freshly constructed engine for
	// a different context, discarding the previous one.
	SetContext(context string) error
}
