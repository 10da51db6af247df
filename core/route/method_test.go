package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutas-dev/rutas/core/route"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported verbs in any case", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"GET", "get", "Post", "DELETE", "patch", "head", "OPTIONS", "put"} {
			m, err := route.ParseMethod(input)
			require.NoError(t, err, "method %q", input)
			assert.NotEmpty(t, m)
		}
	})

	t.Run("rejects unknown verbs", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"FETCH", "TRACE", "CONNECT", "", "GE T"} {
			_, err := route.ParseMethod(input)
			require.Error(t, err, "method %q", input)
			assert.ErrorIs(t, err, route.ErrInvalidMethod)
		}
	})

	t.Run("upper-cases the result", func(t *testing.T) {
		t.Parallel()

		m, err := route.ParseMethod("post")
		require.NoError(t, err)
		assert.Equal(t, route.MethodPost, m)
	})
}
