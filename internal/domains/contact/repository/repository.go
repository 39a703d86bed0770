package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"folio/infras/otel"
	"folio/infras/postgres"
	"folio/internal/domains/contact/model"
	gDto "folio/shared/dto"
	gRepo "folio/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, message model.Message) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Message, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Message]
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Message](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, message model.Message) error {
	return r.repo.Insert(ctx, message) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Message, error) {
	return r.repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.repo.Count(ctx, filter) //nolint:wrapcheck
}
