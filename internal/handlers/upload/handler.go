package upload

import (
	"net/http"

	"folio/infras/otel"
	"folio/internal/domains/upload/model"
	"folio/internal/domains/upload/model/dto"
	"folio/internal/domains/upload/service"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Uploader
	otel    otel.Otel
}

func New(service service.Uploader, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/uploads", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadOne)
		routerGroup.Post("/batch", handler.UploadMany)
	})
}

// FormFiles returns the files posted under field, in the order sent.
func FormFiles(r *http.Request, field string) ([]model.File, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, failure.BadRequest(err)
	}

	headers := r.MultipartForm.File[field]
	files := make([]model.File, len(headers))

	for i, header := range headers {
		files[i] = model.FromFileHeader(header)
	}

	return files, nil
}

// UploadOne uploads a single image.
// @Summary Upload an image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} response.Data[dto.AssetResponse]
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/uploads [post]
// @Security BearerAuth
func (handler *Handler) UploadOne(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadOne")
	defer scope.End()

	files, err := FormFiles(r, constant.FormFile)
	if err == nil && len(files) != 1 {
		err = failure.BadRequestFromString("exactly one file is required")
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, err)

		return
	}

	asset, err := handler.service.UploadOne(ctx, files[0])
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	var res dto.AssetResponse
	res.FromModel(asset)

	response.WithJSON(w, http.StatusCreated, res)
}

// UploadMany uploads a batch of images. The batch succeeds or fails as a
// whole and the URLs keep the order of the files.
// @Summary Upload images
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images"
// @Success 201 {object} response.Data[dto.UploadManyResponse]
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/uploads/batch [post]
// @Security BearerAuth
func (handler *Handler) UploadMany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMany")
	defer scope.End()

	files, err := FormFiles(r, constant.FormFiles)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded files")

		response.WithError(w, err)

		return
	}

	assets, err := handler.service.UploadMany(ctx, files)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("files", len(files)).Msg("failed to upload images")

		response.WithError(w, err)

		return
	}

	var res dto.UploadManyResponse
	res.FromModels(assets)

	response.WithJSON(w, http.StatusCreated, res)
}
