// Package dispatch provides a minimal, self-contained reference
// dispatcher over an engine. It exists to show the dispatch contract
// end to end; production traffic goes through a framework bridge, never
// through this path.
package dispatch

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rutas-dev/rutas/core/engine"
	"github.com/rutas-dev/rutas/core/route"
)

// ErrNotFound is returned when no route matches the request. Unlike
// Engine.Match, the dispatcher has no caller-facing "no match" channel,
// so a miss is an error here.
var ErrNotFound = errors.New("route not found")

// Lite resolves the request by exact segment keys only (no parameter
// matching), runs the matched route's middleware chain in registration
// order, and invokes the action if one is callable. Any middleware
// returning false stops the chain and short-circuits dispatch without
// error.
func Lite(eng *engine.Engine, w http.ResponseWriter, r *http.Request) error {
	rec, ok, err := eng.Find(r.Method, r.URL.Path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrNotFound, r.Method, r.URL.Path)
	}

	for _, mw := range rec.Middleware {
		if mw.Func != nil && !mw.Func(w, r) {
			return nil
		}
	}

	if rec.Action.Func != nil {
		return rec.Action.Func(w, r, route.Params{})
	}
	return nil
}
