package cloudinary

//go:generate go run go.uber.org/mock/mockgen -source=./cloudinary.go -destination=./mocks/cloudinary_mock.go -package=mocks

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"folio/config"
	"folio/infras/otel"
	"folio/shared/constant"
	"folio/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	defaultAPIBase = "https://api.cloudinary.com"
	defaultTimeout = 60 * time.Second

	otelAttrPublicID = "public_id"
	otelAttrFolder   = "folder"
)

var ErrNotConfigured = errors.New("cloudinary is not configured")

// UploadInput is a single unsigned upload through an upload preset.
type UploadInput struct {
	FileName string
	Folder   string
	PublicID string
	Body     io.Reader
}

// UploadResult is the subset of the upload response the app keeps.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

// APIError is a non-2xx answer from the upload API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloudinary responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) HTTPStatusCode() int {
	return e.StatusCode
}

type Cloudinary interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

type cloudinaryImpl struct {
	client *http.Client
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Cloudinary {
	timeout := defaultTimeout
	if seconds := cfg.External.Cloudinary.TimeoutSeconds; seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	return &cloudinaryImpl{
		client: &http.Client{Timeout: timeout},
		config: cfg,
		otel:   otel,
	}
}

func (c *cloudinaryImpl) endpoint(action string) string {
	base := c.config.External.Cloudinary.APIBase
	if base == constant.Empty {
		base = defaultAPIBase
	}

	return fmt.Sprintf("%s/v1_1/%s/image/%s", strings.TrimSuffix(base, "/"), c.config.External.Cloudinary.CloudName, action)
}

// Upload streams the body as a multipart form without buffering it in memory.
func (c *cloudinaryImpl) Upload(ctx context.Context, input UploadInput) (res *UploadResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCloudinaryScopeName, constant.OtelCloudinaryScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	cfg := c.config.External.Cloudinary
	if cfg.CloudName == constant.Empty || cfg.UploadPreset == constant.Empty {
		return nil, ErrNotConfigured
	}

	scope.SetAttributes(map[string]any{
		otelAttrPublicID: input.PublicID,
		otelAttrFolder:   input.Folder,
	})

	reader, writer := io.Pipe()
	form := multipart.NewWriter(writer)

	go func() {
		writer.CloseWithError(writeUploadForm(form, cfg.UploadPreset, input))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("upload"), reader)
	if err != nil {
		reader.Close()

		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, form.FormDataContentType())

	res = &UploadResult{}
	if err = c.do(req, res); err != nil {
		reader.Close()
		log.Error().Err(err).Str("public_id", input.PublicID).Msg("failed to upload image to cloudinary")

		return nil, err
	}

	return res, nil
}

func writeUploadForm(form *multipart.Writer, preset string, input UploadInput) error {
	fields := [][2]string{
		{"upload_preset", preset},
		{"folder", input.Folder},
		{"public_id", input.PublicID},
	}

	for _, field := range fields {
		if field[1] == constant.Empty {
			continue
		}

		if err := form.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", field[0], err)
		}
	}

	part, err := form.CreateFormFile(constant.FormFile, input.FileName)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err = io.Copy(part, input.Body); err != nil {
		return fmt.Errorf("failed to stream file: %w", err)
	}

	return form.Close()
}

// Destroy removes an uploaded image. It needs API credentials, which an
// unsigned preset setup may not have; in that case it is a no-op.
func (c *cloudinaryImpl) Destroy(ctx context.Context, publicID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCloudinaryScopeName, constant.OtelCloudinaryScopeName+".Destroy")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrPublicID, publicID)

	cfg := c.config.External.Cloudinary
	if cfg.APIKey == constant.Empty || cfg.APISecret == constant.Empty {
		log.Warn().Str("public_id", publicID).Msg("cloudinary api credentials missing, skipping destroy")

		return nil
	}

	timestamp := strconv.FormatInt(timezone.Now().Unix(), 10)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", cfg.APIKey)
	form.Set("signature", Sign(map[string]string{"public_id": publicID, "timestamp": timestamp}, cfg.APISecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("destroy"), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build destroy request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	var res struct {
		Result string `json:"result"`
	}

	if err = c.do(req, &res); err != nil {
		return err
	}

	if res.Result != "ok" && res.Result != "not found" {
		return &APIError{StatusCode: http.StatusOK, Message: res.Result}
	}

	return nil
}

func (c *cloudinaryImpl) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cloudinary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}

		message := http.StatusText(resp.StatusCode)
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error.Message != constant.Empty {
			message = body.Error.Message
		}

		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode cloudinary response: %w", err)
	}

	return nil
}

// Sign computes the API request signature: the sorted key=value pairs joined
// by '&', suffixed with the secret, hashed with SHA-1.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}
