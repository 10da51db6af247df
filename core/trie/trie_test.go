package trie_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutas-dev/rutas/core/route"
	"github.com/rutas-dev/rutas/core/trie"
)

func record(method route.Method, uri, action string) *route.Record {
	return &route.Record{
		Method: method,
		URI:    uri,
		Action: route.Action{
			Name: action,
			Func: func(w http.ResponseWriter, r *http.Request, params route.Params) error { return nil },
		},
	}
}

func insert(t *testing.T, root *trie.Node, method route.Method, uri, action string) {
	t.Helper()
	outcome := root.Insert(route.SplitURI(uri), record(method, uri, action))
	require.Equal(t, trie.Stored, outcome, "inserting %s %s", method, uri)
}

func TestInsertOutcomes(t *testing.T) {
	t.Parallel()

	t.Run("stores new records", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users", "users@index")
		insert(t, root, route.MethodPost, "/users", "users@create")
		assert.Equal(t, 2, root.Len())
	})

	t.Run("identical re-registration is a duplicate no-op", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users", "users@index")

		outcome := root.Insert(route.SplitURI("/users"), record(route.MethodGet, "/users", "users@index"))
		assert.Equal(t, trie.Duplicate, outcome)
		assert.Equal(t, 1, root.Len())
	})

	t.Run("conflicting action keeps the first writer", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users", "users@index")

		outcome := root.Insert(route.SplitURI("/users"), record(route.MethodGet, "/users", "users@other"))
		assert.Equal(t, trie.Conflict, outcome)

		m, ok := root.Match(route.MethodGet, route.SplitURI("/users"))
		require.True(t, ok)
		assert.Equal(t, "users@index", m.Record.Action.Name)
	})

	t.Run("root record", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/", "home")

		m, ok := root.Match(route.MethodGet, nil)
		require.True(t, ok)
		assert.Equal(t, "home", m.Record.Action.Name)
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("literal takes priority over parameter", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users/{id}", "users@show")
		insert(t, root, route.MethodGet, "/users/active", "users@active")

		m, ok := root.Match(route.MethodGet, route.SplitURI("/users/active"))
		require.True(t, ok)
		assert.Equal(t, "users@active", m.Record.Action.Name)
		assert.Empty(t, m.Params)

		m, ok = root.Match(route.MethodGet, route.SplitURI("/users/42"))
		require.True(t, ok)
		assert.Equal(t, "users@show", m.Record.Action.Name)
		assert.Equal(t, route.Params{"id": "42"}, m.Params)
	})

	t.Run("extracts multiple parameters", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users/{id}/posts/{postId}", "posts@show")

		m, ok := root.Match(route.MethodGet, route.SplitURI("/users/42/posts/7"))
		require.True(t, ok)
		assert.Equal(t, route.Params{"id": "42", "postId": "7"}, m.Params)
	})

	t.Run("method scoping", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users", "users@index")

		_, ok := root.Match(route.MethodPost, route.SplitURI("/users"))
		assert.False(t, ok)
	})

	t.Run("no match for unknown path", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users", "users@index")

		_, ok := root.Match(route.MethodGet, route.SplitURI("/posts"))
		assert.False(t, ok)

		_, ok = root.Match(route.MethodGet, route.SplitURI("/users/42"))
		assert.False(t, ok)
	})

	t.Run("prefix node without record does not match", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/users/{id}/posts", "posts@index")

		_, ok := root.Match(route.MethodGet, route.SplitURI("/users/42"))
		assert.False(t, ok)
	})
}

func TestMatchBacktracking(t *testing.T) {
	t.Parallel()

	t.Run("sibling parameter branches", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/a/{x}/fixed", "first")
		insert(t, root, route.MethodGet, "/a/{y}/other", "second")

		m, ok := root.Match(route.MethodGet, route.SplitURI("/a/val/other"))
		require.True(t, ok)
		assert.Equal(t, "second", m.Record.Action.Name)
		// the failed {x} branch must not leak a binding
		assert.Equal(t, route.Params{"y": "val"}, m.Params)
	})

	t.Run("insertion order decides among parameter siblings", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/a/{x}/tail", "first")
		insert(t, root, route.MethodGet, "/a/{y}/tail", "second")

		m, ok := root.Match(route.MethodGet, route.SplitURI("/a/val/tail"))
		require.True(t, ok)
		assert.Equal(t, "first", m.Record.Action.Name)
		assert.Equal(t, route.Params{"x": "val"}, m.Params)
	})

	t.Run("falls back to parameter when literal subtree dead-ends", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/files/static/logo.png", "logo")
		insert(t, root, route.MethodGet, "/files/{dir}/readme.md", "readme")

		m, ok := root.Match(route.MethodGet, route.SplitURI("/files/static/readme.md"))
		require.True(t, ok)
		assert.Equal(t, "readme", m.Record.Action.Name)
		assert.Equal(t, route.Params{"dir": "static"}, m.Params)
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	root := trie.NewNode()
	insert(t, root, route.MethodGet, "/users/active", "users@active")
	insert(t, root, route.MethodGet, "/users/{id}", "users@show")

	rec, ok := root.Lookup(route.MethodGet, route.SplitURI("/users/active"))
	require.True(t, ok)
	assert.Equal(t, "users@active", rec.Action.Name)

	// exact-segment walk only: no parameter matching
	_, ok = root.Lookup(route.MethodGet, route.SplitURI("/users/42"))
	assert.False(t, ok)

	rec, ok = root.Lookup(route.MethodGet, route.SplitURI("/users/{id}"))
	require.True(t, ok)
	assert.Equal(t, "users@show", rec.Action.Name)
}

func TestExport(t *testing.T) {
	t.Parallel()

	t.Run("pre-order with accumulated uris", func(t *testing.T) {
		t.Parallel()

		root := trie.NewNode()
		insert(t, root, route.MethodGet, "/", "home")
		insert(t, root, route.MethodGet, "/users", "users@index")
		insert(t, root, route.MethodPost, "/users", "users@create")
		insert(t, root, route.MethodGet, "/users/{id}", "users@show")
		insert(t, root, route.MethodGet, "/posts", "posts@index")

		records := root.Export()
		require.Len(t, records, 5)

		uris := make([]string, len(records))
		for i, rec := range records {
			uris[i] = string(rec.Method) + " " + rec.URI
		}
		assert.Equal(t, []string{
			"GET /",
			"GET /users",
			"POST /users",
			"GET /users/{id}",
			"GET /posts",
		}, uris)
	})

	t.Run("deterministic for fixed insertion order", func(t *testing.T) {
		t.Parallel()

		build := func() *trie.Node {
			root := trie.NewNode()
			insert(t, root, route.MethodGet, "/b", "b")
			insert(t, root, route.MethodGet, "/a", "a")
			insert(t, root, route.MethodGet, "/a/{id}", "a@show")
			return root
		}

		assert.Equal(t, build().Export(), build().Export())
	})
}
