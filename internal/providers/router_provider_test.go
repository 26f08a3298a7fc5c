package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/cards", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "GET /cards", routes[0].Url)
}

func TestRouterProvider_PostAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/publish", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "POST /publish", routes[0].Url)
}

func TestRouterProvider_MethodQualifiedPatterns(t *testing.T) {
	rp := NewRouterProvider()
	rp.Put("/cards/{id}", dummyHandler())
	rp.Delete("/cards/{id}", dummyHandler())
	rp.Patch("/cards/{id}/toggle", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "PUT /cards/{id}", routes[0].Url)
	assert.Equal(t, "DELETE /cards/{id}", routes[1].Url)
	assert.Equal(t, "PATCH /cards/{id}/toggle", routes[2].Url)
}

func TestRouterProvider_MuxRejectsWrongMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/cards", dummyHandler())
	rp.Post("/cards", dummyHandler())

	mux := http.NewServeMux()
	for _, route := range rp.GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/cards", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cards", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterProvider_MuxExposesPathValue(t *testing.T) {
	rp := NewRouterProvider()
	rp.Put("/cards/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.PathValue("id")))
	}))

	mux := http.NewServeMux()
	for _, route := range rp.GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/cards/news-20260831-a", nil))
	assert.Equal(t, "news-20260831-a", rr.Body.String())
}
