package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"folio/infras/otel"
	"folio/internal/domains/user/model"
	"folio/internal/domains/user/model/dto"
	"folio/internal/domains/user/repository"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/password"
	"folio/shared/validator"

	"github.com/rs/zerolog/log"
)

type User interface {
	EnsureAdmin(ctx context.Context, req dto.CreateAdminRequest) (created bool, err error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// EnsureAdmin creates the bootstrap admin when no account uses its email.
// An existing account is left untouched, including its password.
func (s *serviceImpl) EnsureAdmin(ctx context.Context, req dto.CreateAdminRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return false, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return false, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return false, nil
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("bootstrap admin created")

	return true, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.StoreNotFoundError(model.EntityName)
	}

	res.FromModel(user)

	return res, nil
}
