package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/upload/mocks"
	"folio/internal/domains/upload/model"
	"folio/internal/handlers/upload"
	"folio/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockUploader) {
	t.Helper()

	svc := mocks.NewMockUploader(gomock.NewController(t))
	handler := upload.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1/admin", handler.AdminRouter)

	return router, svc
}

func multipartRequest(t *testing.T, path, field string, names ...string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range names {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)

		_, err = part.Write([]byte("image bytes of " + name))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler_UploadOne(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UploadOne(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, file model.File) (model.Asset, error) {
			assert.Equal(t, "a.jpg", file.Name())

			return model.Asset{URL: "https://cdn.example.com/a.jpg", Width: 800, Height: 600}, nil
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/v1/admin/uploads", "file", "a.jpg"))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"url":"https://cdn.example.com/a.jpg"`)
	})

	t.Run("missing file", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/v1/admin/uploads", "other"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UploadOne(gomock.Any(), gomock.Any()).Return(model.Asset{}, failure.Upload(failure.UploadQuota, "upload quota exceeded", nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/v1/admin/uploads", "file", "a.jpg"))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestHandler_UploadMany(t *testing.T) {
	t.Run("keeps file order", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UploadMany(gomock.Any(), gomock.Len(3)).DoAndReturn(func(_ any, files []model.File) ([]model.Asset, error) {
			assets := make([]model.Asset, len(files))
			for i, file := range files {
				assets[i] = model.Asset{URL: "https://cdn.example.com/" + file.Name()}
			}

			return assets, nil
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/v1/admin/uploads/batch", "files", "1.jpg", "2.jpg", "3.jpg"))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"urls":["https://cdn.example.com/1.jpg","https://cdn.example.com/2.jpg","https://cdn.example.com/3.jpg"]`)
	})

	t.Run("batch failure", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UploadMany(gomock.Any(), gomock.Len(2)).Return(nil, failure.Upload(failure.UploadNetwork, "upload service unreachable", nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/v1/admin/uploads/batch", "files", "1.jpg", "2.jpg"))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
