package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/infras/otel/mocks"
	"folio/infras/postgres"
	"folio/internal/domains/portfolio/model"
	"folio/internal/domains/portfolio/repository"
	"folio/shared/failure"
)

func newRepository(t *testing.T) (repository.Portfolio, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func sectionWithImages(urls ...string) (model.Section, []model.SectionImage) {
	section := model.Section{ID: "sec-1", Title: "Durbar 2025", Content: "Festival", Category: "Documentary"}
	images := make([]model.SectionImage, len(urls))

	for i, url := range urls {
		images[i] = model.SectionImage{ID: url, SectionID: section.ID, ImageURL: url, DisplayOrder: i}
	}

	return section, images
}

func TestCreateWithImages(t *testing.T) {
	repo, mock := newRepository(t)
	section, images := sectionWithImages("https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO portfolio_sections").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO section_images").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWithImages(context.Background(), section, images))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithImages_RollsBackWhenImagesFail(t *testing.T) {
	repo, mock := newRepository(t)
	section, images := sectionWithImages("https://cdn.example.com/a.jpg")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO portfolio_sections").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO section_images").WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateWithImages(context.Background(), section, images)

	assert.True(t, failure.IsStoreKind(err, failure.StoreValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithImages_ReplacesImages(t *testing.T) {
	repo, mock := newRepository(t)
	_, images := sectionWithImages("https://cdn.example.com/c.jpg")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE portfolio_sections SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM section_images").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO section_images").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	fields := map[string]any{model.FieldTitle: "Durbar 2025"}

	require.NoError(t, repo.UpdateWithImages(context.Background(), "sec-1", fields, images))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithImages_EmptyListClearsImages(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE portfolio_sections SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM section_images").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	fields := map[string]any{model.FieldTitle: "Durbar 2025"}

	require.NoError(t, repo.UpdateWithImages(context.Background(), "sec-1", fields, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithImages(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM section_images").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM portfolio_sections").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	assert.Error(t, repo.DeleteWithImages(context.Background(), "sec-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategories(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("SELECT DISTINCT category FROM portfolio_sections").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Documentary").AddRow("Street"))

	categories, err := repo.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Documentary", "Street"}, categories)
}

func TestGetImages_NoSections(t *testing.T) {
	repo, mock := newRepository(t)

	images, err := repo.GetImages(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, images)
	assert.NoError(t, mock.ExpectationsWereMet())
}
