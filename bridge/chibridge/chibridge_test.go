package chibridge_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutas-dev/rutas/bridge/chibridge"
	"github.com/rutas-dev/rutas/core/engine"
	"github.com/rutas-dev/rutas/core/registry"
	"github.com/rutas-dev/rutas/core/route"
)

func newBridgeEngine(t *testing.T, context string) (*engine.Engine, []engine.Option) {
	t.Helper()

	reg := registry.New()
	reg.Handle("users@show", func(w http.ResponseWriter, r *http.Request, params route.Params) error {
		_, err := w.Write([]byte("user:" + params["id"]))
		return err
	})
	reg.Handle("healthz", func(w http.ResponseWriter, r *http.Request, params route.Params) error {
		w.WriteHeader(http.StatusOK)
		return nil
	})
	reg.Use("deny", func(w http.ResponseWriter, r *http.Request) bool {
		w.WriteHeader(http.StatusForbidden)
		return false
	})

	opts := []engine.Option{
		engine.WithCacheDir(t.TempDir()),
		engine.WithRegistry(reg),
		engine.WithAutoSave(false),
	}
	eng, err := engine.New(context, opts...)
	require.NoError(t, err)
	return eng, opts
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	eng, _ := newBridgeEngine(t, "api")
	require.NoError(t, eng.AddRoute("GET", "/users/{id}", "users@show"))
	require.NoError(t, eng.AddRoute("GET", "/healthz", "healthz"))

	router := chi.NewRouter()
	b := chibridge.New(router, eng)
	require.NoError(t, b.RegisterRoutes())

	t.Run("parameterized route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user:42", w.Body.String())
	})

	t.Run("static route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("method scoping is the host router's", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/healthz", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestMiddlewareShortCircuit(t *testing.T) {
	t.Parallel()

	eng, _ := newBridgeEngine(t, "api")
	require.NoError(t, eng.AddRoute("GET", "/healthz", "healthz", "deny"))

	router := chi.NewRouter()
	require.NoError(t, chibridge.New(router, eng).RegisterRoutes())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetContext(t *testing.T) {
	t.Parallel()

	eng, opts := newBridgeEngine(t, "api")
	require.NoError(t, eng.AddRoute("GET", "/healthz", "healthz"))

	router := chi.NewRouter()
	b := chibridge.New(router, eng, opts...)

	// rebinding discards the api engine; the web context is empty, so
	// registering afterwards programs nothing into the host router
	require.NoError(t, b.SetContext("web"))
	require.NoError(t, b.RegisterRoutes())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
