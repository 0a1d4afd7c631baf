package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlz-wear/ctrlz-api/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestGroupPrefixesCompose(t *testing.T) {
	r := router.New()

	api := r.Group("/api")
	api.Group("/auth").Get("/me", "auth.me", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	path, found := r.Path("auth.me")
	require.True(t, found)
	assert.Equal(t, "/api/auth/me", path)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()

	stamp := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stamped", "1")
			next.ServeHTTP(w, req)
		})
	}

	r.Group("/api", stamp).Get("/products", "products.list", ok)
	r.Get("/", "root", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, "1", rec.Header().Get("X-Stamped"))

	// Middleware attached to the group must not leak onto other routes.
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("X-Stamped"))
}

func TestURLSubstitution(t *testing.T) {
	r := router.New()
	r.Get("/api/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/abc123", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "unfilled placeholders are an error")

	_, err = r.URL("no.such.route", nil)
	assert.Error(t, err)
}

func TestRoutesSortedByPathThenMethod(t *testing.T) {
	r := router.New()
	r.Post("/api/auth/login", "auth.login", ok)
	r.Get("/", "root", ok)
	r.Get("/api/products", "products.list", ok)

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, "/", infos[0].Path)
	assert.Equal(t, "/api/auth/login", infos[1].Path)
	assert.Equal(t, "/api/products", infos[2].Path)
}

func TestUnnamedRoutesNotListed(t *testing.T) {
	r := router.New()
	r.Get("/healthz", "", ok)

	assert.Empty(t, r.Routes())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
