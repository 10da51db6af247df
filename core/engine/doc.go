// Package engine ties the routing core together: one Engine owns one
// route trie, one sanitized context name, and the cache store for that
// context. Construction eagerly loads any existing cache snapshot into
// the tree; insertion validates, merges, and (with auto-save on)
// persists; matching is a pure read.
//
//	reg := registry.New()
//	reg.Handle("users@show", showUser)
//
//	eng, err := engine.New("api", engine.WithRegistry(reg))
//	if err != nil { ... }
//
//	if err := eng.AddRoute("GET", "/users/{id}", "users@show"); err != nil { ... }
//
//	m, ok, err := eng.Match("GET", "/users/42")
//
// Populate the registry before constructing the engine: loading a cache
// snapshot re-runs full insertion validation, so a snapshot referencing
// handlers the registry does not know fails construction.
//
// The engine is single-threaded by contract. No operation suspends, no
// in-process locks guard the tree, and cross-process coordination is
// limited to the cache store's own write exclusion. One engine per
// context; two engines sharing a context file need external coordination.
// Operations carry no context.Context for the same reason: there is no
// cancellation concept, every call runs to completion or fails outright.
package engine
