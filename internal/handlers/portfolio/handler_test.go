package portfolio_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/portfolio/mocks"
	"folio/internal/domains/portfolio/model/dto"
	"folio/internal/handlers/portfolio"
	"folio/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockPortfolioService) {
	t.Helper()

	svc := mocks.NewMockPortfolioService(gomock.NewController(t))
	handler := portfolio.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		handler.Router(r)
		r.Route("/admin", handler.AdminRouter)
	})

	return router, svc
}

func TestHandler_GetSections(t *testing.T) {
	router, svc := newRouter(t)

	cover := "https://cdn.example.com/a.jpg"
	svc.EXPECT().GetAll(gomock.Any(), dto.SectionFilter{Category: "travel"}).Return(dto.GetSectionsResponse{
		Sections:  []dto.SectionResponse{{ID: "s1", Title: "Durbar 2025", ImageURL: &cover, Images: []string{cover}}},
		TotalData: 1,
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/portfolio?category=travel", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image_url":"https://cdn.example.com/a.jpg"`)
}

func TestHandler_GetCategories(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Categories(gomock.Any()).Return(dto.CategoriesResponse{Categories: []string{"street", "travel"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/portfolio/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"categories":["street","travel"]`)
}

func TestHandler_GetSection(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.SectionResponse{}, failure.StoreNotFoundError("portfolio section"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/portfolio/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateSection(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.MockPortfolioService)
		expected int
	}{
		{
			name: "created",
			body: `{"title":"Durbar 2025","content":"Festival","category":"travel","images":["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]}`,
			setup: func(svc *mocks.MockPortfolioService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.SectionPayload) (dto.SectionResponse, error) {
					assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, req.Images)

					return dto.SectionResponse{ID: "s1", Title: req.Title}, nil
				})
			},
			expected: http.StatusCreated,
		},
		{
			name:     "missing title",
			body:     `{"content":"Festival","category":"travel"}`,
			setup:    func(_ *mocks.MockPortfolioService) {},
			expected: http.StatusBadRequest,
		},
		{
			name: "store rejects",
			body: `{"title":"Durbar 2025","content":"Festival","category":"travel"}`,
			setup: func(svc *mocks.MockPortfolioService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.SectionResponse{}, failure.Store(failure.StorePermission, "permission denied", nil))
			},
			expected: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/portfolio", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHandler_UpdateSection(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), "s1", gomock.Any()).DoAndReturn(func(_ any, _ string, req dto.SectionPayload) (dto.SectionResponse, error) {
		assert.Empty(t, req.Images)

		return dto.SectionResponse{ID: "s1"}, nil
	})

	rec := httptest.NewRecorder()
	body := `{"title":"Durbar 2025","content":"Festival","category":"travel","images":[]}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/admin/portfolio/s1", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteSection(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/admin/portfolio/s1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
