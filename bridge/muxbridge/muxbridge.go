// Package muxbridge programs exported route records into a standard
// library http.ServeMux. Go 1.22 method-and-wildcard patterns map onto
// the core's URI templates directly: "GET /users/{id}" hosts the record
// for GET /users/{id}, with parameters read back via Request.PathValue.
package muxbridge

import (
	"net/http"

	"github.com/rutas-dev/rutas/bridge"
	"github.com/rutas-dev/rutas/core/engine"
	"github.com/rutas-dev/rutas/core/route"
)

// Bridge adapts one engine context onto an http.ServeMux.
type Bridge struct {
	mux  *http.ServeMux
	eng  *engine.Engine
	opts []engine.Option
}

// New creates a bridge over mux for eng.
func New(mux *http.ServeMux, eng *engine.Engine, opts ...engine.Option) *Bridge {
	return &Bridge{
		mux:  mux,
		eng:  eng,
		opts: opts,
	}
}

// RegisterRoutes programs the mux with every exported record.
func (b *Bridge) RegisterRoutes() error {
	for _, rec := range b.eng.ExportRoutes() {
		pattern := string(rec.Method) + " " + muxPath(rec.URI)
		b.mux.HandleFunc(pattern, hostHandler(rec))
	}
	return nil
}

// SetContext rebinds the bridge to a fresh engine for the given context.
func (b *Bridge) SetContext(context string) error {
	eng, err := engine.New(context, b.opts...)
	if err != nil {
		return err
	}
	b.eng = eng
	return nil
}

func muxPath(uri string) string {
	if uri == "" {
		return "/"
	}
	if uri[0] != '/' {
		return "/" + uri
	}
	return uri
}

func hostHandler(rec route.Record) http.HandlerFunc {
	// Parameter names come from the template, values from the mux.
	var names []string
	for _, seg := range route.SplitURI(rec.URI) {
		if route.IsParam(seg) {
			names = append(names, route.ParamName(seg))
		}
	}

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

		params := make(route.Params, len(names))
		for _, name := range names {
			params[name] = r.PathValue(name)
		}

		if err := rec.Action.Func(w, r, params); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

var _ bridge.Bridge = (*Bridge)(nil)
