package middleware

import (
	"context"
	"net/http"
	"slices"

	"folio/config"
	"folio/infras/jwt"
	"folio/infras/otel"
	"folio/internal/domains/auth/model/dto"
	authService "folio/internal/domains/auth/service"
	"folio/permissions"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	// LoginPath is where the page gate sends visitors without a session.
	LoginPath = "/admin"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	RequirePage(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
	cookieName string
}

// NewAuthRoleMiddleware creates a new middleware instance
func NewAuthRoleMiddleware(auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	cookieName := cfg.App.Cookie.Name
	if cookieName == constant.Empty {
		cookieName = constant.DefaultCookieName
	}

	return &authRoleImpl{
		auth:       auth,
		otel:       otel,
		permission: permissions,
		cookieName: cookieName,
	}
}

// WithSession stores the session identity on ctx.
func WithSession(ctx context.Context, session dto.Session) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, session.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, session.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, session.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, session.SessionID)
	ctx = context.WithValue(ctx, constant.ContextKeyToken, session.AccessToken)

	return ctx
}

// Auth resolves the session on every request and rejects the request with
// 401 when it is absent or revoked.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		session, err := m.auth.GetSession(ctx, jwt.TokenFromRequest(request, m.cookieName))
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(WithSession(request.Context(), session)))
	})
}

// RequirePage gates browser pages. Visitors without a session are sent to
// the login page instead of receiving an error body.
func (m *authRoleImpl) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "page.middleware")

		session, err := m.auth.GetSession(ctx, jwt.TokenFromRequest(request, m.cookieName))
		if err != nil {
			log.Debug().Err(err).Str("path", request.URL.Path).Msg("page requires a session, redirecting to login")

			scope.End()
			http.Redirect(writer, request, LoginPath, http.StatusSeeOther)

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(WithSession(request.Context(), session)))
	})
}

// RBAC checks if user has required role
// Requires prior authentication via Auth or RequirePage
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(request.URL.Path, request.Method)

		if permission.Skip || len(permission.Permissions) == 0 {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
