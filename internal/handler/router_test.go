package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/config"
	"github.com/zhouzirui/shopfront/backend/internal/model/catalog"
	"github.com/zhouzirui/shopfront/backend/internal/service/search"
)

func newRouter(live bool) http.Handler {
	svc := search.NewService(catalog.NewMemoryStore(catalog.Seed()))
	return NewRouter(svc, config.SearchConfig{LiveEnabled: live}, zap.NewNop())
}

func TestRouterServesSearch(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?name=key", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"key","results":[{"id":2,"name":"Keyboard"}]}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterLiveSearchIsOptIn(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/live", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Enabled but without an upgrade handshake: the websocket handler answers.
	rec = httptest.NewRecorder()
	newRouter(true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/live", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterNotFound(t *testing.T) {
	for _, path := range []string{"/about", "/contact", "/api/search", "/search/x"} {
		rec := httptest.NewRecorder()
		newRouter(true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouterPreflight(t *testing.T) {
	preflight := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		newRouter(false).ServeHTTP(rec, req)
		return rec
	}

	for _, path := range []string{"/", "/search"} {
		rec := preflight(path)
		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
	}

	for _, path := range []string{"/nowhere", "/search/live", "/search/x"} {
		rec := preflight(path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "404 Not Found", rec.Body.String(), path)
	}
}
