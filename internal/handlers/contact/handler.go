package contact

import (
	"net/http"

	"folio/infras/otel"
	"folio/internal/domains/contact/model/dto"
	"folio/internal/domains/contact/service"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	"folio/shared/validator"
	"folio/transport/http/middleware"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.Submit)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/contact-messages", handler.GetMessages)
}

// Submit stores a contact form message.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Message"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Router /v1/contact [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := dto.SubmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	origin := dto.Origin{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.Header.Get(constant.RequestHeaderUserAgent),
	}

	if _, err := handler.service.Submit(ctx, req, origin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Message sent successfully")
}

// GetMessages lists contact messages, newest first.
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Param page query int false "Page number" minimum(1)
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Success 200 {object} response.Data[dto.GetMessagesResponse]
// @Router /v1/admin/contact-messages [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
