package article_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/article/mocks"
	"folio/internal/domains/article/model/dto"
	"folio/internal/handlers/article"
	"folio/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockArticleService) {
	t.Helper()

	svc := mocks.NewMockArticleService(gomock.NewController(t))
	handler := article.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		handler.Router(r)
		r.Route("/admin", handler.AdminRouter)
	})

	return router, svc
}

func TestHandler_Lists(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		filter dto.ArticleFilter
	}{
		{name: "public sees published only", path: "/v1/articles", filter: dto.ArticleFilter{PublishedOnly: true}},
		{name: "admin sees drafts", path: "/v1/admin/articles", filter: dto.ArticleFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().GetAll(gomock.Any(), tt.filter).Return(dto.GetArticlesResponse{}, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandler_GetPublishedArticle(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetPublished(gomock.Any(), "draft-1").Return(dto.ArticleResponse{}, failure.StoreNotFoundError("article"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/articles/draft-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateArticle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.ArticlePayload) (dto.ArticleResponse, error) {
			assert.Equal(t, "Notes from Patan", req.Title)
			assert.Nil(t, req.Published)

			return dto.ArticleResponse{ID: "a1", Title: req.Title}, nil
		})

		rec := httptest.NewRecorder()
		body := `{"title":"Notes from Patan","body":"# Morning light"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/articles", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"a1"`)
	})

	t.Run("invalid cover url", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		body := `{"title":"Notes","body":"text","cover_image_url":"not a url"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/articles", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_PublishState(t *testing.T) {
	router, svc := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().Publish(gomock.Any(), "a1").Return(dto.ArticleResponse{ID: "a1", Published: true}, nil),
		svc.EXPECT().Unpublish(gomock.Any(), "a1").Return(dto.ArticleResponse{ID: "a1"}, nil),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/articles/a1/publish", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"published":true`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/articles/a1/unpublish", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"published":false`)
}

func TestHandler_DeleteArticle(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "a1").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/admin/articles/a1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
