package editor

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"folio/infras/otel"
	"folio/internal/domains/editor/model/dto"
	"folio/internal/domains/editor/service"
	"folio/internal/handlers/upload"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/validator"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Editor
	otel    otel.Otel
}

func New(service service.Editor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenDraft)
		routerGroup.Get("/{id}", handler.GetDraft)
		routerGroup.Patch("/{id}", handler.SetFields)
		routerGroup.Delete("/{id}", handler.CancelDraft)
		routerGroup.Post("/{id}/images", handler.AddImages)
		routerGroup.Delete("/{id}/images/{index}", handler.RemoveImage)
		routerGroup.Get("/{id}/images/{index}/preview", handler.PreviewImage)
		routerGroup.Post("/{id}/save", handler.SaveDraft)
	})
}

func imageIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamIndex))
	if err != nil {
		return 0, failure.BadRequestFromString("image index must be a number")
	}

	return index, nil
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// OpenDraft opens an add or edit draft.
// @Summary Open a draft
// @Description Without record_id the draft adds a new record; with it the draft edits that record.
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body dto.OpenRequest true "Draft"
// @Success 201 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/drafts [post]
// @Security BearerAuth
func (handler *Handler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDraft")
	defer scope.End()

	req := dto.OpenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	var (
		res dto.DraftResponse
		err error
	)

	if req.RecordID == constant.Empty {
		res, err = handler.service.OpenAdd(ctx, req.Kind)
	} else {
		res, err = handler.service.OpenEdit(ctx, req.Kind, req.RecordID)
	}

	if err != nil {
		handler.fail(w, scope, err, "failed to open draft")

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDraft returns a draft.
// @Summary Get a draft
// @Tags Editor
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/drafts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to get draft")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetFields stages field edits.
// @Summary Stage field edits
// @Tags Editor
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.FieldsPatch true "Fields"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/drafts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) SetFields(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFields")
	defer scope.End()

	req := dto.FieldsPatch{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.SetFields(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		handler.fail(w, scope, err, "failed to stage draft fields")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddImages stages local images.
// @Summary Stage images
// @Description Files are kept on the server until the draft is saved or cancelled.
// @Tags Editor
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param files formData file true "Images"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/drafts/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) AddImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddImages")
	defer scope.End()

	files, err := upload.FormFiles(r, constant.FormFiles)
	if err == nil && len(files) == 0 {
		err = failure.BadRequestFromString("at least one file is required")
	}

	if err != nil {
		handler.fail(w, scope, err, "failed to read staged images")

		return
	}

	res, err := handler.service.AddLocalImages(ctx, chi.URLParam(r, constant.RequestParamID), files)
	if err != nil {
		handler.fail(w, scope, err, "failed to stage images")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveImage drops a staged or persisted image.
// @Summary Remove an image
// @Tags Editor
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Image index"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/drafts/{id}/images/{index} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveImage")
	defer scope.End()

	index, err := imageIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid image index")

		return
	}

	res, err := handler.service.RemoveImage(ctx, chi.URLParam(r, constant.RequestParamID), index)
	if err != nil {
		handler.fail(w, scope, err, "failed to remove image")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PreviewImage streams a staged local image.
// @Summary Preview a staged image
// @Tags Editor
// @Produce octet-stream
// @Param id path string true "Draft ID"
// @Param index path int true "Image index"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /v1/admin/drafts/{id}/images/{index}/preview [get]
// @Security BearerAuth
func (handler *Handler) PreviewImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewImage")
	defer scope.End()

	index, err := imageIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid image index")

		return
	}

	file, err := handler.service.LocalImage(ctx, chi.URLParam(r, constant.RequestParamID), index)
	if err != nil {
		handler.fail(w, scope, err, "failed to find staged image")

		return
	}

	reader, err := file.Open()
	if err != nil {
		handler.fail(w, scope, failure.NotFound("local image not found"), "staged image is gone")

		return
	}
	defer reader.Close()

	if contentType := file.ContentType(); contentType != constant.Empty {
		w.Header().Set(constant.RequestHeaderContentType, contentType)
	}

	if seeker, ok := reader.(io.ReadSeeker); ok {
		http.ServeContent(w, r, file.Name(), time.Time{}, seeker)

		return
	}

	if _, err := io.Copy(w, reader); err != nil {
		log.Warn().Err(err).Str("file", file.Name()).Msg("failed to stream staged image")
	}
}

// SaveDraft commits a draft.
// @Summary Save a draft
// @Description Uploads staged images, writes the record and returns the refreshed list. On failure the draft stays open with its edits.
// @Tags Editor
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.SaveResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/drafts/{id}/save [post]
// @Security BearerAuth
func (handler *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDraft")
	defer scope.End()

	res, err := handler.service.Save(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to save draft")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelDraft discards a draft and its staged files.
// @Summary Cancel a draft
// @Tags Editor
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/drafts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelDraft")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		handler.fail(w, scope, err, "failed to cancel draft")

		return
	}

	response.WithMessage(w, http.StatusOK, "Draft cancelled")
}
