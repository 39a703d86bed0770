package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"strings"

	"folio/config"
	"folio/infras/otel"
	"folio/internal/domains/upload/model"
	"folio/internal/domains/upload/provider"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/validator"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/errgroup"
)

const bytesPerMB = 1 << 20

var defaultMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Uploader turns local files into hosted image URLs.
type Uploader interface {
	UploadOne(ctx context.Context, file model.File) (model.Asset, error)
	UploadMany(ctx context.Context, files []model.File) ([]model.Asset, error)
	Remove(ctx context.Context, assets []model.Asset)
}

type serviceImpl struct {
	provider    provider.Provider
	otel        otel.Otel
	maxSizeMB   int64
	mimeTypes   []string
	concurrency int
}

func New(cfg *config.Config, provider provider.Provider, otel otel.Otel) Uploader {
	svc := &serviceImpl{
		provider:    provider,
		otel:        otel,
		maxSizeMB:   cfg.Upload.MaxFileSizeMB,
		mimeTypes:   cfg.Upload.AllowedMimeTypes,
		concurrency: cfg.Upload.Concurrency,
	}

	if svc.maxSizeMB <= 0 {
		svc.maxSizeMB = constant.DefaultUploadMaxSizeMB
	}

	if len(svc.mimeTypes) == 0 {
		svc.mimeTypes = defaultMimeTypes
	}

	if svc.concurrency <= 0 {
		svc.concurrency = constant.DefaultUploadConcurrency
	}

	return svc
}

func (s *serviceImpl) UploadOne(ctx context.Context, file model.File) (asset model.Asset, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".upload.UploadOne")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.upload(ctx, file)
}

// UploadMany uploads every file concurrently and returns the assets in input
// order. If any upload fails the whole batch fails: assets already hosted are
// removed and the first error is returned.
func (s *serviceImpl) UploadMany(ctx context.Context, files []model.File) (assets []model.Asset, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".upload.UploadMany")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("files", len(files))

	assets = make([]model.Asset, len(files))
	if len(files) == 0 {
		return assets, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for i, file := range files {
		group.Go(func() error {
			asset, uploadErr := s.upload(groupCtx, file)
			if uploadErr != nil {
				return uploadErr
			}

			assets[i] = asset

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		s.Remove(context.WithoutCancel(ctx), assets)

		return nil, err
	}

	return assets, nil
}

// Remove takes hosted assets down, best effort. Failures are only logged.
func (s *serviceImpl) Remove(ctx context.Context, assets []model.Asset) {
	for _, asset := range assets {
		if asset.URL == constant.Empty && asset.PublicID == constant.Empty {
			continue
		}

		if err := s.provider.Remove(ctx, asset); err != nil {
			log.Warn().Err(err).Str("public_id", asset.PublicID).Msg("failed to remove uploaded image")
		}
	}
}

func (s *serviceImpl) upload(ctx context.Context, file model.File) (model.Asset, error) {
	object, err := s.inspect(file)
	if err != nil {
		return model.Asset{}, err
	}

	asset, err := s.provider.Put(ctx, object)
	if err != nil {
		log.Error().Err(err).Str("file", file.Name()).Msg("failed to upload image")

		return model.Asset{}, failure.ClassifyUpload(fmt.Sprintf("failed to upload %s", file.Name()), err)
	}

	log.Debug().Str("file", file.Name()).Str("url", asset.URL).Msg("image uploaded")

	return asset, nil
}

// inspect reads the file, sniffs its real content type and decodes the image
// header for dimensions. The declared content type is not trusted.
func (s *serviceImpl) inspect(file model.File) (provider.Object, error) {
	maxBytes := s.maxSizeMB * bytesPerMB
	tooLarge := failure.Upload(failure.UploadInvalid, fmt.Sprintf("%s must not exceed %d MB", file.Name(), s.maxSizeMB), nil)

	if validator.ValidateVar(file.Size(), fmt.Sprintf("maxfilesize=%d", s.maxSizeMB)) != nil {
		return provider.Object{}, tooLarge
	}

	reader, err := file.Open()
	if err != nil {
		return provider.Object{}, failure.Upload(failure.UploadUnknown, fmt.Sprintf("failed to read %s", file.Name()), err)
	}
	defer reader.Close()

	body, err := io.ReadAll(io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return provider.Object{}, failure.Upload(failure.UploadUnknown, fmt.Sprintf("failed to read %s", file.Name()), err)
	}

	if int64(len(body)) > maxBytes {
		return provider.Object{}, tooLarge
	}

	if len(body) == 0 {
		return provider.Object{}, failure.Upload(failure.UploadInvalid, fmt.Sprintf("%s is empty", file.Name()), nil)
	}

	detected := mimetype.Detect(body)
	contentType := strings.TrimSpace(strings.Split(detected.String(), ";")[0])

	if validator.ValidateVar(contentType, "mimetypes="+strings.Join(s.mimeTypes, " ")) != nil {
		return provider.Object{}, failure.Upload(failure.UploadInvalid,
			fmt.Sprintf("%s must be one of %s, got %s", file.Name(), strings.Join(s.mimeTypes, ", "), contentType), nil)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return provider.Object{}, failure.Upload(failure.UploadInvalid, fmt.Sprintf("%s is not a readable image", file.Name()), err)
	}

	return provider.Object{
		Name:        file.Name(),
		ContentType: contentType,
		Extension:   detected.Extension(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      format,
		Body:        body,
	}, nil
}
