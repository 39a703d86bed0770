package spool_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domains/editor/spool"
)

type memFile struct {
	name string
	body []byte
}

func (f memFile) Name() string                 { return f.name }
func (f memFile) ContentType() string          { return "image/jpeg" }
func (f memFile) Size() int64                  { return int64(len(f.body)) }
func (f memFile) Open() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(f.body)), nil }

func TestSpool_SaveAndRelease(t *testing.T) {
	s, err := spool.New(t.TempDir(), 1)
	require.NoError(t, err)

	local, err := s.Save(memFile{name: "Durbar.JPG", body: []byte("image-bytes")})
	require.NoError(t, err)

	assert.Equal(t, "Durbar.JPG", local.Name())
	assert.Equal(t, int64(11), local.Size())
	assert.Equal(t, ".jpg", local.Path[len(local.Path)-4:])

	data, err := os.ReadFile(local.Path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	s.Release(local)

	_, err = os.Stat(local.Path)
	assert.True(t, os.IsNotExist(err))

	s.Release(local)
}

func TestSpool_RefusesOversizedFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := spool.New(dir, 1)
	require.NoError(t, err)

	_, err = s.Save(memFile{name: "big.png", body: bytes.Repeat([]byte{1}, 1<<20+1)})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
