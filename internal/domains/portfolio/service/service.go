package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Portfolio=MockPortfolioService

import (
	"context"
	"fmt"

	"folio/infras/otel"
	"folio/internal/domains/portfolio/model"
	"folio/internal/domains/portfolio/model/dto"
	"folio/internal/domains/portfolio/repository"
	"folio/shared"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/validator"

	"github.com/rs/zerolog/log"
)

type Portfolio interface {
	GetAll(ctx context.Context, filter dto.SectionFilter) (dto.GetSectionsResponse, error)
	Get(ctx context.Context, id string) (dto.SectionResponse, error)
	Create(ctx context.Context, req dto.SectionPayload) (dto.SectionResponse, error)
	Update(ctx context.Context, id string, req dto.SectionPayload) (dto.SectionResponse, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) (dto.CategoriesResponse, error)
}

type serviceImpl struct {
	repo repository.Portfolio
	otel otel.Otel
}

func New(repo repository.Portfolio, otel otel.Otel) Portfolio {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.SectionFilter) (res dto.GetSectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	sections, err := s.repo.GetAll(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get portfolio sections")

		return res, fmt.Errorf("failed to get portfolio sections: %w", err)
	}

	images, err := s.repo.GetImages(ctx, dto.SectionIDs(sections))
	if err != nil {
		log.Error().Err(err).Msg("failed to get section images")

		return res, fmt.Errorf("failed to get section images: %w", err)
	}

	res.FromModels(sections, images)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	section, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get portfolio section")

		return res, fmt.Errorf("failed to get portfolio section: %w", err)
	}

	if section.ID == constant.Empty {
		return res, failure.StoreNotFoundError(model.EntityName)
	}

	images, err := s.repo.GetImages(ctx, []string{section.ID})
	if err != nil {
		return res, fmt.Errorf("failed to get section images: %w", err)
	}

	res.FromModel(section, images)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SectionPayload) (res dto.SectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	section, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	images := req.ToImages(section.ID)

	if err = s.repo.CreateWithImages(ctx, section, images); err != nil {
		log.Error().Err(err).Str("title", section.Title).Msg("failed to create portfolio section")

		return res, fmt.Errorf("failed to create portfolio section: %w", err)
	}

	res.FromModel(section, images)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.SectionPayload) (res dto.SectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = s.ensureExists(ctx, id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.ToUpdateFields(user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.UpdateWithImages(ctx, id, fields, req.ToImages(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update portfolio section")

		return res, fmt.Errorf("failed to update portfolio section: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteWithImages(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete portfolio section")

		return fmt.Errorf("failed to delete portfolio section: %w", err)
	}

	return nil
}

func (s *serviceImpl) Categories(ctx context.Context) (res dto.CategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".portfolio.Categories")
	defer scope.End()
	defer scope.TraceIfError(err)

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.Categories = categories

	return res, nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check portfolio section: %w", err)
	}

	if !exists {
		return failure.StoreNotFoundError(model.EntityName)
	}

	return nil
}
