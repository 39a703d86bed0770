package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"folio/config"
	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/auth/mocks"
	"folio/internal/domains/auth/model/dto"
	"folio/permissions"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/transport/http/middleware"
)

func newAuthMiddleware(t *testing.T, perms *permissions.PermissionData) (middleware.AuthRole, *mocks.MockAuth) {
	t.Helper()

	auth := mocks.NewMockAuth(gomock.NewController(t))
	cfg := &config.Config{}

	return middleware.NewAuthRoleMiddleware(auth, otelMocks.NewOtel(), perms, cfg), auth
}

func adminSession() dto.Session {
	return dto.Session{AccessToken: "tok", SessionID: "sess-1", UserID: "user-1", Email: "admin@example.com", Role: constant.RoleAdmin}
}

func echoIdentity(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.Context().Value(constant.ContextKeyUserID))
		assert.Equal(t, "sess-1", r.Context().Value(constant.ContextKeyTokenID))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	t.Run("bearer token", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "tok").Return(adminSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/drafts", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()

		mw.Auth(echoIdentity(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("session cookie", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "tok").Return(adminSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/drafts", nil)
		req.AddCookie(&http.Cookie{Name: constant.DefaultCookieName, Value: "tok"})
		rec := httptest.NewRecorder()

		mw.Auth(echoIdentity(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("absent session", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "").Return(dto.Session{}, failure.Auth(failure.AuthExpired, "session expired or absent", nil))

		rec := httptest.NewRecorder()
		mw.Auth(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/drafts", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "session expired or absent")
	})

	t.Run("registry unreachable", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "tok").Return(dto.Session{}, failure.Auth(failure.AuthNetwork, "authentication service unavailable", nil))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/drafts", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()

		mw.Auth(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRequirePage(t *testing.T) {
	t.Run("redirects to login without a session", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "").Return(dto.Session{}, failure.Auth(failure.AuthExpired, "session expired or absent", nil))

		rec := httptest.NewRecorder()
		mw.RequirePage(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, middleware.LoginPath, rec.Header().Get("Location"))
	})

	t.Run("serves the page with a session", func(t *testing.T) {
		mw, auth := newAuthMiddleware(t, nil)
		auth.EXPECT().GetSession(gomock.Any(), "tok").Return(adminSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: constant.DefaultCookieName, Value: "tok"})
		rec := httptest.NewRecorder()

		mw.RequirePage(echoIdentity(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRBAC(t *testing.T) {
	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/admin", Method: "*", Permissions: []string{constant.RoleAdmin}}},
	}

	tests := []struct {
		name     string
		perms    *permissions.PermissionData
		path     string
		role     string
		expected int
	}{
		{name: "admin allowed", perms: perms, path: "/v1/admin/portfolio", role: constant.RoleAdmin, expected: http.StatusNoContent},
		{name: "other role rejected", perms: perms, path: "/v1/admin/portfolio", role: "viewer", expected: http.StatusForbidden},
		{name: "uncovered route", perms: perms, path: "/v1/portfolio", role: "", expected: http.StatusNoContent},
		{name: "missing permissions rejects", perms: nil, path: "/v1/admin/portfolio", role: constant.RoleAdmin, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newAuthMiddleware(t, tt.perms)

			session := adminSession()
			session.Role = tt.role

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req = req.WithContext(middleware.WithSession(req.Context(), session))
			rec := httptest.NewRecorder()

			mw.RBAC(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
