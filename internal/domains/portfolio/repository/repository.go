package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"folio/infras/otel"
	"folio/infras/postgres"
	"folio/internal/domains/portfolio/model"
	"folio/shared"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	"folio/shared/failure"
	"folio/shared/logger"
	gRepo "folio/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	newestFirst = gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, constant.FieldCreatedAt),
		SortDir: gDto.SortDirDesc,
	}
	byDisplayOrder = gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s, %s.%s", model.ImageTableName, model.FieldSectionID, model.ImageTableName, model.FieldDisplayOrder),
		SortDir: gDto.SortDirAsc,
	}
)

// Portfolio persists sections together with their ordered images. Every
// write touching both tables runs in one transaction.
type Portfolio interface {
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Section, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Section, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetImages(ctx context.Context, sectionIDs []string) ([]model.SectionImage, error)
	Categories(ctx context.Context) ([]string, error)
	CreateWithImages(ctx context.Context, section model.Section, images []model.SectionImage) error
	UpdateWithImages(ctx context.Context, id string, fields map[string]any, images []model.SectionImage) error
	DeleteWithImages(ctx context.Context, id string) error
}

type repositoryImpl struct {
	sections gRepo.Repository[model.Section]
	images   gRepo.Repository[model.SectionImage]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Portfolio {
	return &repositoryImpl{
		sections: gRepo.NewRepository[model.Section](model.EntityName, model.TableName, model.FieldID, db, otel),
		images:   gRepo.NewRepository[model.SectionImage](model.ImageEntity, model.ImageTableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

// GetAll returns sections newest first.
func (r *repositoryImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Section, error) {
	return r.sections.GetAll(ctx, newestFirst, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Section, error) {
	return r.sections.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.sections.Exist(ctx, filter) //nolint:wrapcheck
}

// GetImages loads the images of the given sections ordered by display order.
func (r *repositoryImpl) GetImages(ctx context.Context, sectionIDs []string) ([]model.SectionImage, error) {
	if len(sectionIDs) == 0 {
		return []model.SectionImage{}, nil
	}

	filter := shared.FilterByIDs(sectionIDs, model.FieldSectionID, model.ImageTableName)

	return r.images.GetAll(ctx, byDisplayOrder, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Categories(ctx context.Context) (categories []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".portfolio.Categories")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s <> '' ORDER BY %[1]s",
		model.FieldCategory, model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	categories = []string{}
	if err = r.db.Read.SelectContext(ctx, &categories, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.ClassifyStore("failed to list categories", err)
	}

	return categories, nil
}

func (r *repositoryImpl) CreateWithImages(ctx context.Context, section model.Section, images []model.SectionImage) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".portfolio.CreateWithImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	return gRepo.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.sections.InsertTx(ctx, tx, section); err != nil {
			return err
		}

		return r.images.InsertBulkTx(ctx, tx, images)
	})
}

// UpdateWithImages rewrites the section row and replaces its images: all
// previous rows are deleted and the new list inserted.
func (r *repositoryImpl) UpdateWithImages(ctx context.Context, id string, fields map[string]any, images []model.SectionImage) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".portfolio.UpdateWithImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	return gRepo.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.sections.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if err := r.images.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldSectionID, model.ImageTableName)); err != nil {
			return err
		}

		return r.images.InsertBulkTx(ctx, tx, images)
	})
}

// DeleteWithImages removes the images explicitly before the section; the
// foreign key cascade covers rows written outside this service.
func (r *repositoryImpl) DeleteWithImages(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".portfolio.DeleteWithImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	return gRepo.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.images.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldSectionID, model.ImageTableName)); err != nil {
			return err
		}

		return r.sections.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
}
