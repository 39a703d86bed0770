package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"folio/infras/otel"
	"folio/infras/postgres"
	"folio/internal/domains/user/model"
	"folio/shared"
	gDto "folio/shared/dto"
	gRepo "folio/shared/repository"
)

// User stores accounts. Email lookups ignore case and surrounding spaces.
type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func byEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEqFold,
				Value:    strings.TrimSpace(email),
				Table:    model.TableName,
			},
		},
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	return r.repo.Insert(ctx, user) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.repo.Get(ctx, byEmail(email)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.repo.Exist(ctx, byEmail(email)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	return r.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
