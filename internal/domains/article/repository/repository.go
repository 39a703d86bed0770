package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"folio/infras/otel"
	"folio/infras/postgres"
	"folio/internal/domains/article/model"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	gRepo "folio/shared/repository"
)

// Published articles sort by publish time, drafts by creation time.
var newestFirst = gDto.QueryParams{
	SortBy: fmt.Sprintf("COALESCE(%[1]s.%[2]s, %[1]s.%[3]s)",
		model.TableName, model.FieldPublishedAt, constant.FieldCreatedAt),
	SortDir: gDto.SortDirDesc,
}

type Article interface {
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Article, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Article, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, article model.Article) error
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Article]
}

func New(db *postgres.Connection, otel otel.Otel) Article {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Article](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Article, error) {
	return r.repo.GetAll(ctx, newestFirst, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Article, error) {
	return r.repo.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.repo.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Insert(ctx context.Context, article model.Article) error {
	return r.repo.Insert(ctx, article) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return r.repo.Update(ctx, fields, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return r.repo.Delete(ctx, filter) //nolint:wrapcheck
}
