package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"folio/infras/jwt"
	"folio/infras/otel"
	"folio/internal/domains/auth/model/dto"
	"folio/internal/domains/auth/session"
	userModel "folio/internal/domains/user/model"
	userRepo "folio/internal/domains/user/repository"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/password"
	"folio/shared/timezone"
	"folio/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = constant.ResponseErrorInvalidCredentials
	msgSessionExpired     = "session expired or absent"
	msgProviderDown       = "authentication service unavailable"
)

type Auth interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.Session, error)
	GetSession(ctx context.Context, token string) (dto.Session, error)
	SignOut(ctx context.Context, token string) error
}

type serviceImpl struct {
	userRepo userRepo.User
	sessions session.Store
	otel     otel.Otel
	jwt      jwt.JWT
}

func New(userRepo userRepo.User, sessions session.Store, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		sessions: sessions,
		otel:     otel,
		jwt:      jwt,
	}
}

// SignIn verifies the credentials and registers a new session. Unknown
// emails and wrong passwords fail the same way.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Auth(failure.AuthInvalidCredentials, msgInvalidCredentials, nil)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.NormalizedEmail())
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user for sign in")

		return res, classifyStoreFailure(err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.NormalizedEmail()).Msg("sign in attempt with unknown email")
		password.Decoy(req.Password)

		return res, failure.Auth(failure.AuthInvalidCredentials, msgInvalidCredentials, nil)
	}

	if err = password.Verify(req.Password, user.Password); err != nil || !user.Active {
		log.Warn().Str("email", user.Email).Bool("active", user.Active).Msg("sign in attempt rejected")

		return res, failure.Auth(failure.AuthInvalidCredentials, msgInvalidCredentials, nil)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, failure.Auth(failure.AuthUnknown, "failed to issue session", err)
	}

	res.FromToken(token, user.ID, user.Email, user.Role)

	if err = s.sessions.Save(ctx, res.ToRecord()); err != nil {
		log.Error().Err(err).Msg("failed to register session")

		return dto.Session{}, failure.Auth(failure.AuthNetwork, msgProviderDown, err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}

	fields := lastLogin.ToFields(user.ID)
	if password.NeedsRehash(user.Password) {
		if rehashed, err := password.Hash(req.Password); err == nil {
			fields[userModel.FieldPassword] = rehashed
		}
	}

	if err := s.userRepo.UpdateByID(ctx, user.ID, fields); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	return res, nil
}

// GetSession checks the token signature and expiry, then the registry, on
// every call. A revoked or unknown session is reported as expired.
func (s *serviceImpl) GetSession(ctx context.Context, token string) (res dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == constant.Empty {
		return res, failure.Auth(failure.AuthExpired, msgSessionExpired, jwt.ErrMissingToken)
	}

	claims, err := s.jwt.Validate(token)
	if err != nil {
		return res, failure.Auth(failure.AuthExpired, msgSessionExpired, err)
	}

	record, found, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		log.Error().Err(err).Msg("session registry unavailable")

		return res, failure.Auth(failure.AuthNetwork, msgProviderDown, err)
	}

	if !found || record.UserID != claims.UserID {
		return res, failure.Auth(failure.AuthExpired, msgSessionExpired, nil)
	}

	res.FromRecord(token, record)

	return res, nil
}

// SignOut revokes the session behind token. It never fails: an invalid token
// or an unreachable registry is logged and the caller proceeds as signed out.
func (s *serviceImpl) SignOut(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignOut")
	defer scope.End()

	claims, err := s.jwt.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("sign out with unusable token")

		return nil
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("session_id", claims.SessionID).Msg("failed to revoke session, continuing sign out")
	}

	return nil
}

func classifyStoreFailure(err error) error {
	var storeErr *failure.StoreError
	if errors.As(err, &storeErr) && storeErr.Kind == failure.StoreTransient {
		return failure.Auth(failure.AuthNetwork, msgProviderDown, err)
	}

	return failure.Auth(failure.AuthUnknown, "failed to sign in", err)
}
