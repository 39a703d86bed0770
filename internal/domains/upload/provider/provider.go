package provider

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=../mocks/provider_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"folio/config"
	"folio/infras/cloudinary"
	"folio/infras/s3"
	"folio/internal/domains/upload/model"
	"folio/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Object is an inspected image ready to be stored.
type Object struct {
	Name        string
	ContentType string
	Extension   string
	Width       int
	Height      int
	Format      string
	Body        []byte
}

// Provider hosts image objects and can take them down again.
type Provider interface {
	Put(ctx context.Context, object Object) (model.Asset, error)
	Remove(ctx context.Context, asset model.Asset) error
}

// New picks the provider named by UPLOAD_PROVIDER, defaulting to S3.
func New(cfg *config.Config, s3Client s3.S3, cloudinaryClient cloudinary.Cloudinary) Provider {
	folder := strings.Trim(cfg.Upload.Folder, "/")

	switch strings.ToLower(cfg.Upload.Provider) {
	case constant.UploadProviderCloudinary:
		log.Info().Str("folder", folder).Msg("uploads go to cloudinary")

		return NewCloudinary(cloudinaryClient, folder)
	case constant.UploadProviderS3, constant.Empty:
	default:
		log.Warn().Str("provider", cfg.Upload.Provider).Msg("unknown upload provider, using s3")
	}

	log.Info().Str("folder", folder).Msg("uploads go to s3")

	return NewS3(s3Client, folder)
}

type s3Provider struct {
	client s3.S3
	folder string
}

func NewS3(client s3.S3, folder string) Provider {
	return &s3Provider{client: client, folder: folder}
}

// Put stores the object under <folder>/<uuid><ext>. Object keys are never
// reused, so a retried upload creates a new object.
func (p *s3Provider) Put(ctx context.Context, object Object) (model.Asset, error) {
	key := path.Join(p.folder, uuid.NewString()+object.Extension)

	url, err := p.client.PutObject(ctx, key, object.ContentType, bytes.NewReader(object.Body), int64(len(object.Body)))
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to put %s: %w", object.Name, err)
	}

	return model.Asset{
		URL:      url,
		PublicID: key,
		Width:    object.Width,
		Height:   object.Height,
		Format:   object.Format,
		Bytes:    int64(len(object.Body)),
	}, nil
}

func (p *s3Provider) Remove(ctx context.Context, asset model.Asset) error {
	key := asset.PublicID
	if key == constant.Empty {
		key = p.client.ObjectKeyFromURL(asset.URL)
	}

	return p.client.DeleteObject(ctx, key) //nolint:wrapcheck
}

type cloudinaryProvider struct {
	client cloudinary.Cloudinary
	folder string
}

func NewCloudinary(client cloudinary.Cloudinary, folder string) Provider {
	return &cloudinaryProvider{client: client, folder: folder}
}

// Put sends the object through the upload preset. Dimensions reported by the
// service win over the locally decoded ones.
func (p *cloudinaryProvider) Put(ctx context.Context, object Object) (model.Asset, error) {
	res, err := p.client.Upload(ctx, cloudinary.UploadInput{
		FileName: object.Name,
		Folder:   p.folder,
		Body:     bytes.NewReader(object.Body),
	})
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to upload %s: %w", object.Name, err)
	}

	asset := model.Asset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    object.Width,
		Height:   object.Height,
		Format:   object.Format,
		Bytes:    int64(len(object.Body)),
	}

	if res.Width > 0 && res.Height > 0 {
		asset.Width, asset.Height = res.Width, res.Height
	}

	if res.Format != constant.Empty {
		asset.Format = res.Format
	}

	if res.Bytes > 0 {
		asset.Bytes = res.Bytes
	}

	return asset, nil
}

func (p *cloudinaryProvider) Remove(ctx context.Context, asset model.Asset) error {
	return p.client.Destroy(ctx, asset.PublicID) //nolint:wrapcheck
}
