package article

import (
	"net/http"

	"folio/infras/otel"
	"folio/internal/domains/article/model/dto"
	"folio/internal/domains/article/service"
	"folio/shared/constant"
	"folio/shared/validator"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Article
	otel    otel.Otel
}

func New(service service.Article, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/articles", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPublishedArticles)
		routerGroup.Get("/{id}", handler.GetPublishedArticle)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/articles", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArticles)
		routerGroup.Post("/", handler.CreateArticle)
		routerGroup.Get("/{id}", handler.GetArticle)
		routerGroup.Put("/{id}", handler.UpdateArticle)
		routerGroup.Delete("/{id}", handler.DeleteArticle)
		routerGroup.Post("/{id}/publish", handler.PublishArticle)
		routerGroup.Post("/{id}/unpublish", handler.UnpublishArticle)
	})
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, name string, filter dto.ArticleFilter) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get articles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPublishedArticles lists published articles.
// @Summary List published articles
// @Tags Article
// @Produce json
// @Success 200 {object} response.Data[dto.GetArticlesResponse]
// @Router /v1/articles [get]
func (handler *Handler) GetPublishedArticles(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "GetPublishedArticles", dto.ArticleFilter{PublishedOnly: true})
}

// GetArticles lists every article, drafts included.
// @Summary List articles
// @Tags Article
// @Produce json
// @Success 200 {object} response.Data[dto.GetArticlesResponse]
// @Router /v1/admin/articles [get]
// @Security BearerAuth
func (handler *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "GetArticles", dto.ArticleFilter{})
}

// GetPublishedArticle returns a published article with its body rendered.
// @Summary Get a published article
// @Tags Article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/articles/{id} [get]
func (handler *Handler) GetPublishedArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishedArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetPublished(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get published article")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetArticle returns an article.
// @Summary Get an article
// @Tags Article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/articles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get article")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateArticle creates an article.
// @Summary Create an article
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.ArticlePayload true "Article"
// @Success 201 {object} response.Data[dto.ArticleResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/articles [post]
// @Security BearerAuth
func (handler *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArticle")
	defer scope.End()

	req := dto.ArticlePayload{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create article")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateArticle updates an article.
// @Summary Update an article
// @Description Published is optional; when omitted the publish state is kept.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body dto.ArticlePayload true "Article"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/articles/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ArticlePayload{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update article")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteArticle deletes an article.
// @Summary Delete an article
// @Tags Article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/articles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete article")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Article deleted successfully")
}

// PublishArticle publishes an article.
// @Summary Publish an article
// @Tags Article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/articles/{id}/publish [post]
// @Security BearerAuth
func (handler *Handler) PublishArticle(w http.ResponseWriter, r *http.Request) {
	handler.setPublished(w, r, true)
}

// UnpublishArticle returns an article to draft.
// @Summary Unpublish an article
// @Tags Article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/articles/{id}/unpublish [post]
// @Security BearerAuth
func (handler *Handler) UnpublishArticle(w http.ResponseWriter, r *http.Request) {
	handler.setPublished(w, r, false)
}

func (handler *Handler) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPublished")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var (
		res dto.ArticleResponse
		err error
	)

	if published {
		res, err = handler.service.Publish(ctx, id)
	} else {
		res, err = handler.service.Unpublish(ctx, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Bool("published", published).Msg("failed to change article publish state")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
