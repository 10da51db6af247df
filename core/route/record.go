package route

import (
	"net/http"
	"reflect"
)

// Params holds path parameters extracted during matching, keyed by the
// parameter token name.
type Params map[string]string

// HandlerFunc is the handler signature carried by route records. The core
// never parses requests itself; the params argument is whatever the
// matcher (or a host framework bridge) extracted from the path.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params Params) error

// Middleware runs before a route's handler. Returning false stops the
// chain and short-circuits dispatch.
type Middleware func(w http.ResponseWriter, r *http.Request) bool

// Action is a normalized handler reference: the resolved func plus the
// registry identifier it was resolved from. Name is empty for anonymous
// handlers, which therefore cannot survive cache serialization.
type Action struct {
	Name string
	Func HandlerFunc
}

// Equal reports whether two actions refer to the same handler. Named
// actions compare by identifier; anonymous ones by func identity.
func (a Action) Equal(b Action) bool {
	if a.Name != "" || b.Name != "" {
		return a.Name == b.Name
	}
	if a.Func == nil || b.Func == nil {
		return a.Func == nil && b.Func == nil
	}
	return reflect.ValueOf(a.Func).Pointer() == reflect.ValueOf(b.Func).Pointer()
}

// Ware is one resolved middleware entry in a record's chain.
type Ware struct {
	Name string
	Func Middleware
}

// Record is the stored association of an HTTP method and path template
// with a handler reference and an ordered middleware chain. At most one
// record exists per (node, method) pair in the trie.
type Record struct {
	Method     Method
	URI        string
	Action     Action
	Middleware []Ware
}

// Definition is the interchange shape for route records: JSON/YAML bulk
// import, cache snapshots, and CLI output. Action and middleware are
// registry identifiers.
type Definition struct {
	Method     string   `json:"method,omitempty" yaml:"method,omitempty"`
	URI        string   `json:"uri" yaml:"uri"`
	Action     string   `json:"action" yaml:"action"`
	Middleware []string `json:"middleware,omitempty" yaml:"middleware,omitempty"`
}

// Definition converts the record to its interchange shape. Anonymous
// actions and middleware produce empty identifiers.
func (r Record) Definition() Definition {
	def := Definition{
		Method: string(r.Method),
		URI:    r.URI,
		Action: r.Action.Name,
	}
	for _, w := range r.Middleware {
		if w.Name == "" {
			// anonymous middleware has no serializable identity
			continue
		}
		def.Middleware = append(def.Middleware, w.Name)
	}
	return def
}
