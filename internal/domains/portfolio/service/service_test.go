package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/portfolio/mocks"
	"folio/internal/domains/portfolio/model"
	"folio/internal/domains/portfolio/model/dto"
	"folio/internal/domains/portfolio/service"
	"folio/shared/constant"
	"folio/shared/failure"
)

func newService(t *testing.T) (*mocks.MockPortfolio, service.Portfolio) {
	t.Helper()

	repo := mocks.NewMockPortfolio(gomock.NewController(t))

	return repo, service.New(repo, otelMocks.NewOtel())
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func ptr(s string) *string { return &s }

func TestPortfolioService_Create(t *testing.T) {
	t.Run("durbar square with three images", func(t *testing.T) {
		repo, svc := newService(t)

		req := dto.SectionPayload{
			Title:    "Durbar 2025",
			Content:  "Morning light over the temples.",
			Category: "Travel",
			Location: ptr("Kathmandu"),
			Date:     ptr("2025-03-14"),
			Images: []string{
				"https://cdn.example.com/a.jpg",
				"https://cdn.example.com/b.jpg",
				"https://cdn.example.com/c.jpg",
			},
		}

		repo.EXPECT().CreateWithImages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, section model.Section, images []model.SectionImage) error {
				assert.Equal(t, "Durbar 2025", section.Title)
				assert.Equal(t, "user-1", section.CreatedBy)
				require.NotNil(t, section.Story)
				assert.Equal(t, req.Content, *section.Story)
				require.Len(t, images, 3)

				for i, image := range images {
					assert.Equal(t, section.ID, image.SectionID)
					assert.Equal(t, i, image.DisplayOrder)
					assert.Equal(t, req.Images[i], image.ImageURL)
				}

				return nil
			})

		res, err := svc.Create(adminCtx(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "2025-03-14", res.Date)
		require.NotNil(t, res.ImageURL)
		assert.Equal(t, "https://cdn.example.com/a.jpg", *res.ImageURL)
		assert.Equal(t, req.Images, res.Images)
	})

	t.Run("missing title is rejected before the store", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Create(adminCtx(), dto.SectionPayload{Content: "x", Category: "Travel"})
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid image url is rejected", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Create(adminCtx(), dto.SectionPayload{
			Title: "t", Content: "c", Category: "Travel", Images: []string{"not a url"},
		})
		require.Error(t, err)
	})

	t.Run("store failure is propagated with its kind", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().CreateWithImages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.Store(failure.StorePermission, "denied", errors.New("rls")))

		_, err := svc.Create(adminCtx(), dto.SectionPayload{Title: "t", Content: "c", Category: "Travel"})
		require.Error(t, err)
		assert.True(t, failure.IsStoreKind(err, failure.StorePermission))
	})
}

func TestPortfolioService_Update(t *testing.T) {
	t.Run("replaces images in new order", func(t *testing.T) {
		repo, svc := newService(t)

		newOrder := []string{"https://cdn.example.com/c.jpg", "https://cdn.example.com/a.jpg"}

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().UpdateWithImages(gomock.Any(), "sec-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, images []model.SectionImage) error {
				assert.Equal(t, "user-1", fields[constant.FieldModifiedBy])
				assert.Contains(t, fields, model.FieldLocation)
				require.Len(t, images, 2)
				assert.Equal(t, newOrder[0], images[0].ImageURL)
				assert.Equal(t, 0, images[0].DisplayOrder)
				assert.Equal(t, 1, images[1].DisplayOrder)

				return nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Section{ID: "sec-1", Title: "t"}, nil)
		repo.EXPECT().GetImages(gomock.Any(), []string{"sec-1"}).Return([]model.SectionImage{
			{ID: "i2", SectionID: "sec-1", ImageURL: newOrder[1], DisplayOrder: 1},
			{ID: "i1", SectionID: "sec-1", ImageURL: newOrder[0], DisplayOrder: 0},
		}, nil)

		res, err := svc.Update(adminCtx(), "sec-1", dto.SectionPayload{
			Title: "t", Content: "c", Category: "Travel", Images: newOrder,
		})
		require.NoError(t, err)
		assert.Equal(t, newOrder, res.Images)
		assert.Equal(t, newOrder[0], *res.ImageURL)
	})

	t.Run("empty image list clears the section", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().UpdateWithImages(gomock.Any(), "sec-1", gomock.Any(), gomock.Len(0)).Return(nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Section{ID: "sec-1"}, nil)
		repo.EXPECT().GetImages(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.Update(adminCtx(), "sec-1", dto.SectionPayload{Title: "t", Content: "c", Category: "Travel"})
		require.NoError(t, err)
		assert.Nil(t, res.ImageURL)
		assert.Empty(t, res.Images)
	})

	t.Run("unknown section", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(adminCtx(), "missing", dto.SectionPayload{Title: "t", Content: "c", Category: "Travel"})
		require.Error(t, err)
		assert.True(t, failure.IsStoreKind(err, failure.StoreNotFound))
	})
}

func TestPortfolioService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockPortfolio)
		wantKind  failure.StoreKind
		wantErr   bool
	}{
		{
			name: "existing section",
			setupMock: func(repo *mocks.MockPortfolio) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().DeleteWithImages(gomock.Any(), "sec-1").Return(nil)
			},
		},
		{
			name: "already deleted",
			setupMock: func(repo *mocks.MockPortfolio) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.StoreNotFound,
		},
		{
			name: "transient failure",
			setupMock: func(repo *mocks.MockPortfolio) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().DeleteWithImages(gomock.Any(), "sec-1").
					Return(failure.Store(failure.StoreTransient, "timeout", errors.New("i/o timeout")))
			},
			wantErr:  true,
			wantKind: failure.StoreTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(adminCtx(), "sec-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsStoreKind(err, tt.wantKind))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPortfolioService_GetAll(t *testing.T) {
	repo, svc := newService(t)

	sections := []model.Section{{ID: "s2", Title: "newer"}, {ID: "s1", Title: "older"}}

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(sections, nil)
	repo.EXPECT().GetImages(gomock.Any(), []string{"s2", "s1"}).Return([]model.SectionImage{
		{ID: "a", SectionID: "s1", ImageURL: "https://x/1.jpg", DisplayOrder: 0},
	}, nil)

	res, err := svc.GetAll(context.Background(), dto.SectionFilter{Category: "Travel"})
	require.NoError(t, err)
	require.Len(t, res.Sections, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "s2", res.Sections[0].ID)
	assert.Nil(t, res.Sections[0].ImageURL)
	assert.Equal(t, "https://x/1.jpg", *res.Sections[1].ImageURL)
}

func TestPortfolioService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Section{}, nil)

		_, err := svc.Get(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, failure.IsStoreKind(err, failure.StoreNotFound))
	})

	t.Run("categories", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().Categories(gomock.Any()).Return([]string{"Portrait", "Travel"}, nil)

		res, err := svc.Categories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Portrait", "Travel"}, res.Categories)
	})
}
