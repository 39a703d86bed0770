package portfolio

import (
	"net/http"

	"folio/infras/otel"
	"folio/internal/domains/portfolio/model/dto"
	"folio/internal/domains/portfolio/service"
	"folio/shared/constant"
	"folio/shared/validator"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Portfolio
	otel    otel.Otel
}

func New(service service.Portfolio, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/portfolio", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSections)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetSection)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/portfolio", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSections)
		routerGroup.Post("/", handler.CreateSection)
		routerGroup.Get("/{id}", handler.GetSection)
		routerGroup.Put("/{id}", handler.UpdateSection)
		routerGroup.Delete("/{id}", handler.DeleteSection)
	})
}

// GetSections lists portfolio sections.
// @Summary List portfolio sections
// @Description Sections newest first, each with its ordered images. Optionally filtered by category.
// @Tags Portfolio
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetSectionsResponse]
// @Failure 503 {object} response.Error
// @Router /v1/portfolio [get]
func (handler *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSections")
	defer scope.End()

	filter := dto.SectionFilter{Category: r.URL.Query().Get(constant.RequestParamCategory)}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get portfolio sections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCategories lists the categories in use.
// @Summary List portfolio categories
// @Tags Portfolio
// @Produce json
// @Success 200 {object} response.Data[dto.CategoriesResponse]
// @Router /v1/portfolio/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.Categories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get portfolio categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSection returns one section.
// @Summary Get a portfolio section
// @Tags Portfolio
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response.Data[dto.SectionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/portfolio/{id} [get]
func (handler *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get portfolio section")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateSection creates a section with its images.
// @Summary Create a portfolio section
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param request body dto.SectionPayload true "Section"
// @Success 201 {object} response.Data[dto.SectionResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/portfolio [post]
// @Security BearerAuth
func (handler *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSection")
	defer scope.End()

	req := dto.SectionPayload{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create portfolio section")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Portfolio section created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateSection replaces a section's fields and image list.
// @Summary Update a portfolio section
// @Description The images array replaces the stored images in the given order.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body dto.SectionPayload true "Section"
// @Success 200 {object} response.Data[dto.SectionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/portfolio/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.SectionPayload{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update portfolio section")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSection deletes a section and its images.
// @Summary Delete a portfolio section
// @Tags Portfolio
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/portfolio/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete portfolio section")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Portfolio section deleted successfully")
}
