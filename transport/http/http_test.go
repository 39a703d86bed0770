package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"folio/config"
	otelMocks "folio/infras/otel/mocks"
	authMocks "folio/internal/domains/auth/mocks"
	"folio/internal/handlers/web"
	"folio/permissions"
	"folio/shared/constant"
	"folio/transport/http/middleware"
	"folio/transport/http/router"
)

func newServer(t *testing.T, env string, health ...Hook) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = env

	otel := otelMocks.NewOtel()
	authRole := middleware.NewAuthRoleMiddleware(authMocks.NewMockAuth(gomock.NewController(t)), otel, permissions.Get(), cfg)
	r := router.New(router.DomainHandlers{Web: web.New(cfg, otel)}, authRole)

	return New(cfg, r, middleware.NewAppMiddleware(otel, cfg, nil), Lifecycle{Health: health})
}

func get(h *HTTP, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHTTP_Health(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		h := newServer(t, constant.ServerEnvProduction, func(context.Context) error { return nil })

		rec := get(h, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ServerStateReady, h.State())
	})

	t.Run("dependency down", func(t *testing.T) {
		h := newServer(t, constant.ServerEnvProduction, func(context.Context) error { return errors.New("connection refused") })

		rec := get(h, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.ResponseErrorUnhealthy)
	})

	t.Run("shutting down", func(t *testing.T) {
		for _, state := range []ServerState{ServerStateInGracePeriod, ServerStateInCleanupPeriod} {
			h := newServer(t, constant.ServerEnvProduction)
			h.setup()
			h.setState(state)

			rec := get(h, "/health")

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
		}
	})
}

func TestHTTP_Swagger(t *testing.T) {
	t.Run("served outside production", func(t *testing.T) {
		rec := get(newServer(t, constant.ServerEnvDevelopment), "/swagger/doc.json")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/v1/portfolio")
	})

	t.Run("hidden in production", func(t *testing.T) {
		rec := get(newServer(t, constant.ServerEnvProduction), "/swagger/doc.json")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRunHooks_StopsAtFirstError(t *testing.T) {
	calls := 0
	hooks := []Hook{
		func(context.Context) error { calls++; return nil },
		func(context.Context) error { calls++; return errors.New("boom") },
		func(context.Context) error { calls++; return nil },
	}

	assert.EqualError(t, runHooks(context.Background(), hooks), "boom")
	assert.Equal(t, 2, calls)
}
