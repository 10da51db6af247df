// Package chibridge programs exported route records into a
// go-chi/chi/v5 router. The route core and chi share the {name}
// placeholder syntax, so URI templates map onto chi patterns verbatim.
package chibridge

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rutas-dev/rutas/bridge"
	"github.com/rutas-dev/rutas/core/engine"
	"github.com/rutas-dev/rutas/core/route"
)

// Bridge adapts one engine context onto a chi router.
type Bridge struct {
	router chi.Router
	eng    *engine.Engine
	opts   []engine.Option
}

// New creates a bridge over router for eng. The engine options are kept
// so SetContext can construct replacement engines the same way.
func New(router chi.Router, eng *engine.Engine, opts ...engine.Option) *Bridge {
	return &Bridge{
		router: router,
		eng:    eng,
		opts:   opts,
	}
}

// RegisterRoutes pulls the exported route list and registers each record
// with the host router. Parameters extracted by chi are handed to the
// action through the record's params argument.
func (b *Bridge) RegisterRoutes() error {
	for _, rec := range b.eng.ExportRoutes() {
		b.router.MethodFunc(string(rec.Method), chiPattern(rec.URI), hostHandler(rec))
	}
	return nil
}

// SetContext discards the current engine and rebinds the bridge to a new
// engine instance for the given context.
func (b *Bridge) SetContext(context string) error {
	eng, err := engine.New(context, b.opts...)
	if err != nil {
		return err
	}
	b.eng = eng
	return nil
}

func chiPattern(uri string) string {
	if uri == "" {
		return "/"
	}
	if uri[0] != '/' {
		return "/" + uri
	}
	return uri
}

func hostHandler(rec route.Record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, mw := range rec.Middleware {
			if mw.Func != nil && !mw.Func(w, r) {
				return
			}
		}

		if rec.Action.Func == nil {
			http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
			return
		}

		params := make(route.Params)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					params[key] = rctx.URLParams.Values[i]
				}
			}
		}

		if err := rec.Action.Func(w, r, params); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

var _ bridge.Bridge = (*Bridge)(nil)
