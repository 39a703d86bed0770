package web_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/config"
	otelMocks "folio/infras/otel/mocks"
	"folio/internal/handlers/web"
)

func newRouter(t *testing.T, root string) chi.Router {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.StaticDir = root

	handler := web.New(cfg, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_ServeApp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<div id=root></div>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "static asset", path: "/assets/app.js", expected: "console.log(1)"},
		{name: "client route", path: "/portfolio", expected: "<div id=root></div>"},
		{name: "login route", path: "/admin", expected: "<div id=root></div>"},
		{name: "directory", path: "/assets", expected: "<div id=root></div>"},
	}

	router := newRouter(t, root)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())
		})
	}
}

func TestHandler_ServeApp_NotConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
