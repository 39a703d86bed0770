package auth

import (
	"net/http"

	"folio/config"
	"folio/infras/jwt"
	"folio/infras/otel"
	"folio/internal/domains/auth/model/dto"
	"folio/internal/domains/auth/service"
	userService "folio/internal/domains/user/service"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/validator"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	user    userService.User
	otel    otel.Otel
	cookie  cookieConfig
}

type cookieConfig struct {
	name   string
	domain string
	secure bool
}

func New(service service.Auth, user userService.User, cfg *config.Config, otel otel.Otel) Handler {
	cookie := cookieConfig{
		name:   cfg.App.Cookie.Name,
		domain: cfg.App.Cookie.Domain,
		secure: cfg.App.Cookie.Secure,
	}

	if cookie.name == constant.Empty {
		cookie.name = constant.DefaultCookieName
	}

	return Handler{
		service: service,
		user:    user,
		otel:    otel,
		cookie:  cookie,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-in", handler.SignIn)
		r.Post("/sign-out", handler.SignOut)
		r.Get("/session", handler.GetSession)
	})
}

func (handler *Handler) AdminRouter(r chi.Router) {
	r.Get("/me", handler.GetUser)
}

func (handler *Handler) setCookie(w http.ResponseWriter, session dto.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cookie.name,
		Value:    session.AccessToken,
		Path:     "/",
		Domain:   handler.cookie.domain,
		Expires:  session.ExpiresAt,
		Secure:   handler.cookie.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cookie.name,
		Value:    constant.Empty,
		Path:     "/",
		Domain:   handler.cookie.domain,
		MaxAge:   -1,
		Secure:   handler.cookie.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SignIn handles admin sign in
// @Summary Sign in
// @Description Verify admin credentials and open a session. The token is returned and set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign In Request"
// @Success 200 {object} response.Data[dto.Session]
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/auth/sign-in [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, failure.Auth(failure.AuthInvalidCredentials, constant.ResponseErrorInvalidCredentials, nil))

		return
	}

	res, err := handler.service.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in")

		response.WithError(w, err)

		return
	}

	handler.setCookie(w, res)

	scope.AddEvent("Admin signed in")

	response.WithJSON(w, http.StatusOK, res)
}

// SignOut handles admin sign out
// @Summary Sign out
// @Description Revoke the current session and clear the cookie. Always succeeds.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/auth/sign-out [post]
func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignOut")
	defer scope.End()

	if err := handler.service.SignOut(ctx, jwt.TokenFromRequest(r, handler.cookie.name)); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("sign out reported an error, clearing session anyway")
	}

	handler.clearCookie(w)

	response.WithMessage(w, http.StatusOK, "Signed out")
}

// GetSession reports the current session
// @Summary Current session
// @Description Return the session behind the cookie or bearer token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.Session]
// @Failure 401 {object} response.Error
// @Router /v1/auth/session [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.GetSession(ctx, jwt.TokenFromRequest(r, handler.cookie.name))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetUser returns the signed in admin
// @Summary Current admin
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/me [get]
// @Security BearerAuth
func (handler *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUser")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.user.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
