// Package trie implements the segment-based route tree: ordered child
// maps keyed by literal segments or {name} parameter tokens, per-method
// route records on any node, depth-first matching with strict
// backtracking, and a deterministic pre-order export walk.
//
// A parameter is just a special-shaped segment key, not a separate node
// kind: insertion stores the {name} token verbatim, and matching treats
// any child whose key has the parameter shape as a wildcard for one
// segment. Literal children always win over parameter children at the
// same depth.
//
// The tree carries no locks. One engine owns one tree; concurrent
// mutation is outside the contract.
package trie

import (
	"github.com/rutas-dev/rutas/core/route"
)

// Outcome reports what Insert did with a record.
type Outcome uint8

const (
	// Stored means the record was added to a free (node, method) slot.
	Stored Outcome = iota
	// Duplicate means an identical registration already existed; no-op.
	Duplicate
	// Conflict means a different action holds the slot; the new record
	// was discarded and the first writer remains authoritative.
	Conflict
)

// Node is one tree node. Any node may hold both children and method
// records, since a URI is also a valid prefix of a longer URI. Children
// keep insertion order: it is the tie-break order among parameter
// siblings and the traversal order for Export.
type Node struct {
	children map[string]*Node
	order    []string
	methods  map[route.Method]*route.Record
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Match is a successful lookup: the stored record plus the parameter
// bindings accumulated on the way to it.
type Match struct {
	Record *route.Record
	Params route.Params
}

// Insert walks the segments from this node, creating children as needed,
// and stores rec at the terminal node. Segments are used verbatim as
// child keys, parameter tokens included. The caller validates method,
// URI, and action before calling.
func (n *Node) Insert(segments []string, rec *route.Record) Outcome {
	curr := n
	for _, seg := range segments {
		curr = curr.child(seg)
	}

	if existing, ok := curr.methods[rec.Method]; ok {
		if existing.Action.Equal(rec.Action) {
			return Duplicate
		}
		return Conflict
	}

	if curr.methods == nil {
		curr.methods = make(map[route.Method]*route.Record)
	}
	curr.methods[rec.Method] = rec
	return Stored
}

// Match resolves segments to a record for the method, binding parameter
// tokens along the way. Literal children take priority over parameter
// children at the same depth; among parameter siblings, insertion order
// decides and the first success wins. A failed branch unbinds its
// tentative parameter before the next candidate, so no partial bindings
// leak into the result.
func (n *Node) Match(method route.Method, segments []string) (Match, bool) {
	params := make(route.Params)
	rec := n.matchRecursive(method, segments, 0, params)
	if rec == nil {
		return Match{}, false
	}
	return Match{Record: rec, Params: params}, true
}

// Lookup resolves segments by exact child keys only, with no parameter
// matching. Used by the minimal reference dispatcher.
func (n *Node) Lookup(method route.Method, segments []string) (*route.Record, bool) {
	curr := n
	for _, seg := range segments {
		next, ok := curr.children[seg]
		if !ok {
			return nil, false
		}
		curr = next
	}
	rec, ok := curr.methods[method]
	return rec, ok
}

// Export walks the tree pre-order and returns the flat route list: each
// node's records (URI rewritten to the accumulated path, "/" for the
// root) followed by its children in key insertion order. The order is
// deterministic for a fixed insertion order.
func (n *Node) Export() []route.Record {
	var out []route.Record
	n.export(nil, &out)
	return out
}

// Len returns the number of records stored in the subtree.
func (n *Node) Len() int {
	count := len(n.methods)
	for _, key := range n.order {
		count += n.children[key].Len()
	}
	return count
}

func (n *Node) child(seg string) *Node {
	if c, ok := n.children[seg]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := NewNode()
	n.children[seg] = c
	n.order = append(n.order, seg)
	return c
}

func (n *Node) matchRecursive(method route.Method, segments []string, index int, params route.Params) *route.Record {
	if index == len(segments) {
		return n.methods[method]
	}

	seg := segments[index]

	if literal, ok := n.children[seg]; ok {
		if rec := literal.matchRecursive(method, segments, index+1, params); rec != nil {
			return rec
		}
	}

	for _, key := range n.order {
		if key == seg || !route.IsParam(key) {
			continue
		}
		name := route.ParamName(key)
		prev, bound := params[name]
		params[name] = seg
		if rec := n.children[key].matchRecursive(method, segments, index+1, params); rec != nil {
			return rec
		}
		// unwind the tentative binding before the next candidate
		if bound {
			params[name] = prev
		} else {
			delete(params, name)
		}
	}

	return nil
}

func (n *Node) export(prefix []string, out *[]route.Record) {
	for _, method := range route.Methods {
		rec, ok := n.methods[method]
		if !ok {
			continue
		}
		exported := *rec
		exported.URI = route.JoinSegments(prefix)
		*out = append(*out, exported)
	}
	for _, key := range n.order {
		n.children[key].export(append(prefix, key), out)
	}
}
