package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "folio/infras/otel/mocks"
	"folio/internal/domains/contact/mocks"
	"folio/internal/domains/contact/model/dto"
	"folio/internal/handlers/contact"
	gDto "folio/shared/dto"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockContactService) {
	t.Helper()

	svc := mocks.NewMockContactService(gomock.NewController(t))
	handler := contact.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		handler.Router(r)
		r.Route("/admin", handler.AdminRouter)
	})

	return router, svc
}

func TestHandler_Submit(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Submit(gomock.Any(), gomock.Any(), dto.Origin{IPAddress: "203.0.113.7", UserAgent: "browser"}).Return(dto.MessageResponse{ID: "m1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"Hello"}`))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		req.Header.Set("User-Agent", "browser")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("blank message", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"   "}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetMessages(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params gDto.QueryParams) (dto.GetMessagesResponse, error) {
		assert.Equal(t, 2, params.Page)
		assert.Equal(t, 5, params.Limit)

		return dto.GetMessagesResponse{TotalData: 6, TotalPage: 2}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/contact-messages?page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_data":6`)
}
