package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Article=MockArticleService

import (
	"context"
	"fmt"

	"folio/infras/otel"
	"folio/internal/domains/article/model"
	"folio/internal/domains/article/model/dto"
	"folio/internal/domains/article/repository"
	"folio/shared"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	"folio/shared/failure"
	"folio/shared/markdown"
	gModel "folio/shared/model"
	"folio/shared/timezone"
	"folio/shared/validator"

	"github.com/rs/zerolog/log"
)

type Article interface {
	GetAll(ctx context.Context, filter dto.ArticleFilter) (dto.GetArticlesResponse, error)
	Get(ctx context.Context, id string) (dto.ArticleResponse, error)
	GetPublished(ctx context.Context, id string) (dto.ArticleResponse, error)
	Create(ctx context.Context, req dto.ArticlePayload) (dto.ArticleResponse, error)
	Update(ctx context.Context, id string, req dto.ArticlePayload) (dto.ArticleResponse, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (dto.ArticleResponse, error)
	Unpublish(ctx context.Context, id string) (dto.ArticleResponse, error)
}

type serviceImpl struct {
	repo repository.Article
	otel otel.Otel
}

func New(repo repository.Article, otel otel.Otel) Article {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.ArticleFilter) (res dto.GetArticlesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	articles, err := s.repo.GetAll(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get articles")

		return res, fmt.Errorf("failed to get articles: %w", err)
	}

	res.FromModels(articles)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Article, error) {
	article, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get article")

		return article, fmt.Errorf("failed to get article: %w", err)
	}

	if article.ID == constant.Empty {
		return article, failure.StoreNotFoundError(model.EntityName)
	}

	return article, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	article, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(article)

	return res, nil
}

// GetPublished is the public read: drafts are reported as not found and the
// body is rendered to sanitised HTML.
func (s *serviceImpl) GetPublished(ctx context.Context, id string) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.GetPublished")
	defer scope.End()
	defer scope.TraceIfError(err)

	article, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !article.Published() {
		return res, failure.StoreNotFoundError(model.EntityName)
	}

	res.FromModel(article)

	res.BodyHTML, err = markdown.Render(article.Body)
	if err != nil {
		return res, failure.InternalError(err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ArticlePayload) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	article := req.ToModel(user)

	if err = s.repo.Insert(ctx, article); err != nil {
		log.Error().Err(err).Str("title", article.Title).Msg("failed to create article")

		return res, fmt.Errorf("failed to create article: %w", err)
	}

	res.FromModel(article)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.ArticlePayload) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, req.ToUpdateFields(user, current), byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update article")

		return res, fmt.Errorf("failed to update article: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to check article: %w", err)
	}

	if !exists {
		return failure.StoreNotFoundError(model.EntityName)
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete article")

		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

func (s *serviceImpl) Publish(ctx context.Context, id string) (dto.ArticleResponse, error) {
	return s.setPublished(ctx, id, true)
}

func (s *serviceImpl) Unpublish(ctx context.Context, id string) (dto.ArticleResponse, error) {
	return s.setPublished(ctx, id, false)
}

// setPublished is a no-op when the article is already in the wanted state,
// so republishing keeps the first publish time.
func (s *serviceImpl) setPublished(ctx context.Context, id string, published bool) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".article.SetPublished")
	defer scope.End()
	defer scope.TraceIfError(err)

	article, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if article.Published() == published {
		res.FromModel(article)

		return res, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	fields := gModel.Stamp(map[string]any{model.FieldPublishedAt: nil}, user, now)
	article.PublishedAt = nil

	if published {
		fields[model.FieldPublishedAt] = now
		article.PublishedAt = &now
	}

	if err = s.repo.Update(ctx, fields, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Bool("published", published).Msg("failed to change publish state")

		return res, fmt.Errorf("failed to change publish state: %w", err)
	}

	article.Touch(user, now)
	res.FromModel(article)

	return res, nil
}
