package model

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"folio/shared/constant"
)

// File is a local image waiting to be uploaded.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// Asset is a hosted image returned by an upload provider.
type Asset struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int64
}

type headerFile struct {
	header *multipart.FileHeader
}

// FromFileHeader adapts a multipart form file.
func FromFileHeader(header *multipart.FileHeader) File {
	return headerFile{header: header}
}

func (f headerFile) Name() string {
	return f.header.Filename
}

func (f headerFile) ContentType() string {
	return f.header.Header.Get(constant.RequestHeaderContentType)
}

func (f headerFile) Size() int64 {
	return f.header.Size
}

func (f headerFile) Open() (io.ReadCloser, error) {
	file, err := f.header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open form file %s: %w", f.header.Filename, err)
	}

	return file, nil
}

// LocalFile is a file spooled to disk.
type LocalFile struct {
	Path         string
	OriginalName string
	MimeType     string
	Length       int64
}

func (f LocalFile) Name() string {
	if f.OriginalName != constant.Empty {
		return f.OriginalName
	}

	return filepath.Base(f.Path)
}

func (f LocalFile) ContentType() string {
	return f.MimeType
}

func (f LocalFile) Size() int64 {
	return f.Length
}

func (f LocalFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spooled file %s: %w", f.Name(), err)
	}

	return file, nil
}
