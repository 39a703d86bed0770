package cloudinary_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/config"
	"folio/infras/cloudinary"
	"folio/infras/otel/mocks"
)

func newClient(t *testing.T, handler http.HandlerFunc) cloudinary.Cloudinary {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.Cloudinary.APIBase = server.URL
	cfg.External.Cloudinary.CloudName = "demo"
	cfg.External.Cloudinary.UploadPreset = "portfolio_unsigned"

	return cloudinary.New(cfg, mocks.NewOtel())
}

func TestUpload(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "portfolio_unsigned", r.FormValue("upload_preset"))
		assert.Equal(t, "portfolio", r.FormValue("folder"))
		assert.Equal(t, "img-1", r.FormValue("public_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		body, _ := io.ReadAll(file)
		assert.Equal(t, "durbar.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"secure_url":"https://res.cloudinary.com/demo/image/upload/portfolio/img-1.jpg","public_id":"portfolio/img-1","width":1200,"height":800,"format":"jpg","bytes":10}`)
	})

	res, err := client.Upload(context.Background(), cloudinary.UploadInput{
		FileName: "durbar.jpg",
		Folder:   "portfolio",
		PublicID: "img-1",
		Body:     strings.NewReader("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/portfolio/img-1.jpg", res.SecureURL)
	assert.Equal(t, "portfolio/img-1", res.PublicID)
	assert.Equal(t, 1200, res.Width)
	assert.Equal(t, 800, res.Height)
	assert.Equal(t, "jpg", res.Format)
}

func TestUpload_APIError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid image file"}}`)
	})

	_, err := client.Upload(context.Background(), cloudinary.UploadInput{
		FileName: "notes.txt",
		Body:     strings.NewReader("plain text"),
	})

	var apiErr *cloudinary.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid image file", apiErr.Message)
}

func TestUpload_NotConfigured(t *testing.T) {
	client := cloudinary.New(&config.Config{}, mocks.NewOtel())

	_, err := client.Upload(context.Background(), cloudinary.UploadInput{Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, cloudinary.ErrNotConfigured)
}

func TestDestroy_WithoutCredentials(t *testing.T) {
	client := newClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("destroy must not call the API without credentials")
	})

	assert.NoError(t, client.Destroy(context.Background(), "portfolio/img-1"))
}

func TestSign(t *testing.T) {
	signature := cloudinary.Sign(map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
	}, "abcd")

	assert.Equal(t, "b4ad47fb4e25c7bf5f92a20089f9db59bc302313", signature)
}
