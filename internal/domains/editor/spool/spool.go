package spool

//go:generate go run go.uber.org/mock/mockgen -source=./spool.go -destination=../mocks/spool_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	uploadModel "folio/internal/domains/upload/model"
	"folio/shared/constant"

	"github.com/rs/zerolog/log"
)

const filePattern = "draft-*"

// Spool keeps local image selections on disk until they are uploaded or
// discarded.
type Spool interface {
	Save(file uploadModel.File) (uploadModel.LocalFile, error)
	Release(files ...uploadModel.LocalFile)
}

type spoolImpl struct {
	dir     string
	maxSize int64
}

// New creates the spool directory. An empty dir spools under the system
// temp directory.
func New(dir string, maxSizeMB int64) (Spool, error) {
	if dir == constant.Empty {
		dir = filepath.Join(os.TempDir(), "folio-drafts")
	}

	if maxSizeMB <= 0 {
		maxSizeMB = constant.DefaultUploadMaxSizeMB
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create spool dir %s: %w", dir, err)
	}

	return &spoolImpl{dir: dir, maxSize: maxSizeMB << 20}, nil
}

// Save copies the file into the spool. Files larger than the upload limit
// are refused here so they never reach the uploader.
func (s *spoolImpl) Save(file uploadModel.File) (uploadModel.LocalFile, error) {
	src, err := file.Open()
	if err != nil {
		return uploadModel.LocalFile{}, err //nolint:wrapcheck
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.dir, filePattern+strings.ToLower(filepath.Ext(file.Name())))
	if err != nil {
		return uploadModel.LocalFile{}, fmt.Errorf("failed to create spool file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()

	if err == nil {
		err = closeErr
	}

	if err == nil && written > s.maxSize {
		err = fmt.Errorf("%s exceeds %d MB", file.Name(), s.maxSize>>20)
	}

	if err != nil {
		s.remove(dst.Name())

		return uploadModel.LocalFile{}, fmt.Errorf("failed to spool %s: %w", file.Name(), err)
	}

	return uploadModel.LocalFile{
		Path:         dst.Name(),
		OriginalName: file.Name(),
		MimeType:     file.ContentType(),
		Length:       written,
	}, nil
}

// Release deletes spooled files. Missing files are ignored.
func (s *spoolImpl) Release(files ...uploadModel.LocalFile) {
	for _, file := range files {
		s.remove(file.Path)
	}
}

func (s *spoolImpl) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("failed to release spooled file")
	}
}
