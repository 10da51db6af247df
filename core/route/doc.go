// Package route defines the data model shared by the rutas routing core:
// the HTTP method enumeration, URI template validation and segmentation,
// and the route record types stored in the trie and exchanged with cache
// stores and framework bridges.
//
// A URI template is a sequence of /-separated segments. Each segment is
// either a literal (word characters, '-' and '.') or a parameter token of
// the form {name}, where the braces wrap the whole segment:
//
//	/users/{id}/posts/{postId}
//
// Templates are validated with ValidateURI before segmentation on every
// insert and dispatch path. SplitURI normalizes separators, so "/a//b/"
// segments to ["a", "b"].
//
// Handler references are carried as Action values: a resolved handler
// func plus an optional registry identifier. Identifiers (e.g.
// "users@show") are how actions survive cache serialization; see the
// registry package for resolution rules.
package route
