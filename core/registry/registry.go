// Package registry maps handler identifiers to resolved handler and
// middleware funcs. It replaces runtime reflection probes for
// "Target@member" style references: the registry is populated once at
// startup, and route insertion validates membership instead of probing
// metadata. Identifiers are what allow actions to survive cache
// serialization.
//
// The registry is not synchronized. Populate it during startup, before
// any engine built on it starts inserting or loading routes.
package registry

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rutas-dev/rutas/core/route"
)

var (
	// ErrInvalidAction is returned when an action reference is none of:
	// a handler func, a registered identifier, or a (target, member) pair.
	ErrInvalidAction = errors.New("invalid action reference")
	// ErrUnknownHandler is returned when an identifier names no registered handler.
	ErrUnknownHandler = errors.New("unknown handler")
	// ErrUnknownMiddleware is returned when an identifier names no registered middleware.
	ErrUnknownMiddleware = errors.New("unknown middleware")
)

// Registry holds named handlers and middleware.
type Registry struct {
	handlers   map[string]route.HandlerFunc
	middleware map[string]route.Middleware
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		handlers:   make(map[string]route.HandlerFunc),
		middleware: make(map[string]route.Middleware),
	}
}

// Handle registers a handler under the given identifier, conventionally a
// bare name ("healthz") or a "Target@member" pair ("users@show").
// Re-registering an identifier replaces the previous handler.
func (r *Registry) Handle(name string, fn route.HandlerFunc) {
	r.handlers[name] = fn
}

// Use registers a named middleware.
func (r *Registry) Use(name string, fn route.Middleware) {
	r.middleware[name] = fn
}

// Handler looks up a handler by identifier.
func (r *Registry) Handler(name string) (route.HandlerFunc, bool) {
	fn, ok := r.handlers[name]
	return fn, ok
}

// Middleware looks up a middleware by identifier.
func (r *Registry) Middleware(name string) (route.Middleware, bool) {
	fn, ok := r.middleware[name]
	return fn, ok
}

// ResolveAction normalizes an opaque action reference into a route.Action.
// Accepted forms:
//
//   - route.Action: returned as-is when already resolved; a named but
//     unresolved Action is looked up by name
//   - route.HandlerFunc (or a func with the same signature): anonymous action
//   - string: a registered identifier, bare or "Target@member"
//   - [2]string or []string{target, member}: joined as "target@member"
//
// Identifier forms fail with ErrUnknownHandler when the registry has no
// entry; anything else fails with ErrInvalidAction.
func (r *Registry) ResolveAction(v any) (route.Action, error) {
	switch a := v.(type) {
	case route.Action:
		if a.Func != nil {
			return a, nil
		}
		if a.Name != "" {
			return r.actionByName(a.Name)
		}
	case route.HandlerFunc:
		if a != nil {
			return route.Action{Func: a}, nil
		}
	case func(http.ResponseWriter, *http.Request, route.Params) error:
		if a != nil {
			return route.Action{Func: a}, nil
		}
	case string:
		return r.actionByName(a)
	case [2]string:
		return r.actionByName(a[0] + "@" + a[1])
	case []string:
		if len(a) == 2 {
			return r.actionByName(a[0] + "@" + a[1])
		}
	}
	return route.Action{}, fmt.Errorf("%w: %T", ErrInvalidAction, v)
}

// ResolveMiddleware normalizes a middleware chain, preserving order.
// Each entry is a route.Middleware func, a route.Ware, or a registered
// identifier string.
func (r *Registry) ResolveMiddleware(refs ...any) ([]route.Ware, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	chain := make([]route.Ware, 0, len(refs))
	for _, ref := range refs {
		switch mw := ref.(type) {
		case route.Ware:
			if mw.Func == nil && mw.Name != "" {
				fn, ok := r.middleware[mw.Name]
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownMiddleware, mw.Name)
				}
				mw.Func = fn
			}
			chain = append(chain, mw)
		case route.Middleware:
			chain = append(chain, route.Ware{Func: mw})
		case func(http.ResponseWriter, *http.Request) bool:
			chain = append(chain, route.Ware{Func: mw})
		case string:
			fn, ok := r.middleware[mw]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownMiddleware, mw)
			}
			chain = append(chain, route.Ware{Name: mw, Func: fn})
		default:
			return nil, fmt.Errorf("%w: middleware %T", ErrInvalidAction, ref)
		}
	}
	return chain, nil
}

func (r *Registry) actionByName(name string) (route.Action, error) {
	fn, ok := r.handlers[name]
	if !ok {
		return route.Action{}, fmt.Errorf("%w: %q", ErrUnknownHandler, name)
	}
	return route.Action{Name: name, Func: fn}, nil
}
