package engine

import "errors"

var (
	// ErrRouteConflict is returned (only under WithStrictConflicts) when a
	// registration targets a (method, path) pair already held by a
	// different action. The first registration stays authoritative.
	ErrRouteConflict = errors.New("conflicting route registration")
	// ErrImportParse is returned when a JSON or YAML import payload
	// cannot be decoded into a route list.
	ErrImportParse = errors.New("malformed route import payload")
	// ErrNoDefault is returned by Default when no default engine has been
	// installed with SetDefault.
	ErrNoDefault = errors.New("no default engine installed")
)
