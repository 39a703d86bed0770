package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	uploadModel "folio/internal/domains/upload/model"
	"folio/shared/constant"
	"folio/shared/failure"
)

type Kind string

const (
	KindPortfolio Kind = "portfolio"
	KindArticle   Kind = "article"
)

func (k Kind) Valid() bool {
	return k == KindPortfolio || k == KindArticle
}

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
	StateSaving State = "saving"
)

// Provenance tells an already hosted image from a local file awaiting upload.
type Provenance string

const (
	ProvenancePersisted Provenance = "persisted"
	ProvenanceLocal     Provenance = "local"
)

const EntityName = "draft"

var (
	ErrNotOpen      = errors.New("draft is not open")
	ErrSaving       = errors.New("draft is being saved")
	ErrImageIndex   = errors.New("image index out of range")
	ErrDraftClosed  = errors.New("draft is closed")
	ErrSingleImage  = errors.New("an article holds a single cover image")
	ErrUnknownKind  = errors.New("unknown draft kind")
	ErrMissingField = errors.New("required field missing")
)

// Image is one staged preview. Persisted images carry a URL, local ones a
// spooled file.
type Image struct {
	Provenance Provenance
	URL        string
	File       *uploadModel.LocalFile
}

// Fields are the staged form values of either kind of record.
type Fields struct {
	Title     string
	Content   string
	Story     string
	Category  string
	Location  string
	Date      string
	Body      string
	Excerpt   string
	Published bool
}

// Draft is the in-progress edit of one record.
type Draft struct {
	ID        string
	Owner     string
	Kind      Kind
	Mode      Mode
	RecordID  string
	State     State
	Fields    Fields
	Images    []Image
	LastError string
	CreatedAt time.Time
	TouchedAt time.Time
}

// NewDraft returns a draft in the open state.
func NewDraft(id, owner string, kind Kind, mode Mode, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Owner:     owner,
		Kind:      kind,
		Mode:      mode,
		State:     StateOpen,
		Images:    []Image{},
		CreatedAt: now,
		TouchedAt: now,
	}
}

func (d *Draft) Touch(now time.Time) {
	d.TouchedAt = now
}

// Editable reports whether the staged state may change.
func (d *Draft) Editable() error {
	switch d.State {
	case StateOpen:
		return nil
	case StateSaving:
		return failure.Conflict(ErrSaving.Error())
	default:
		return failure.Conflict(ErrDraftClosed.Error())
	}
}

// AddPersisted appends already hosted URLs, used when seeding an edit.
func (d *Draft) AddPersisted(urls ...string) {
	for _, url := range urls {
		if strings.TrimSpace(url) == constant.Empty {
			continue
		}

		d.Images = append(d.Images, Image{Provenance: ProvenancePersisted, URL: url})
	}
}

// AddLocal appends spooled files after the existing previews.
func (d *Draft) AddLocal(files ...uploadModel.LocalFile) error {
	if err := d.Editable(); err != nil {
		return err
	}

	if d.Kind == KindArticle && len(d.Images)+len(files) > 1 {
		return failure.BadRequestFromString(ErrSingleImage.Error())
	}

	for _, file := range files {
		d.Images = append(d.Images, Image{Provenance: ProvenanceLocal, File: &file})
	}

	return nil
}

// RemoveImage drops the preview at index. A removed local entry is returned
// so the caller can release its file.
func (d *Draft) RemoveImage(index int) (*uploadModel.LocalFile, error) {
	if err := d.Editable(); err != nil {
		return nil, err
	}

	if index < 0 || index >= len(d.Images) {
		return nil, failure.BadRequestFromString(fmt.Sprintf("%s: %d", ErrImageIndex, index))
	}

	removed := d.Images[index]
	d.Images = slices.Delete(d.Images, index, index+1)

	if removed.Provenance == ProvenanceLocal {
		return removed.File, nil
	}

	return nil, nil
}

// Locals lists the pending files in selection order.
func (d *Draft) Locals() []uploadModel.LocalFile {
	var files []uploadModel.LocalFile

	for _, image := range d.Images {
		if image.Provenance == ProvenanceLocal && image.File != nil {
			files = append(files, *image.File)
		}
	}

	return files
}

// Persisted lists the hosted URLs still staged, in order.
func (d *Draft) Persisted() []string {
	var urls []string

	for _, image := range d.Images {
		if image.Provenance == ProvenancePersisted {
			urls = append(urls, image.URL)
		}
	}

	return urls
}

// MergeURLs is the final image list: persisted URLs still staged, followed
// by the freshly uploaded ones in selection order.
func MergeURLs(persisted, uploaded []string) []string {
	merged := make([]string, 0, len(persisted)+len(uploaded))
	merged = append(merged, persisted...)

	return append(merged, uploaded...)
}

// Validate checks the required fields of the draft's kind.
func (d *Draft) Validate() error {
	var missing []string

	required := map[string]string{"title": d.Fields.Title}

	switch d.Kind {
	case KindPortfolio:
		required["category"] = d.Fields.Category
		required["content"] = d.Fields.Content
	case KindArticle:
		required["body"] = d.Fields.Body
	default:
		return failure.BadRequestFromString(ErrUnknownKind.Error())
	}

	for _, field := range []string{"title", "category", "content", "body"} {
		value, ok := required[field]
		if ok && strings.TrimSpace(value) == constant.Empty {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return failure.BadRequestFromString(fmt.Sprintf("%s: %s", ErrMissingField, strings.Join(missing, ", ")))
	}

	return nil
}

// BeginSave moves an open, valid draft to saving.
func (d *Draft) BeginSave() error {
	if d.State != StateOpen {
		return d.Editable()
	}

	if err := d.Validate(); err != nil {
		d.LastError = err.Error()

		return err
	}

	d.State = StateSaving
	d.LastError = constant.Empty

	return nil
}

// FinishSave closes the draft on success. On failure the draft returns to
// open with its staged edits intact and the error recorded.
func (d *Draft) FinishSave(err error) {
	if err != nil {
		d.State = StateOpen
		d.LastError = err.Error()

		return
	}

	d.State = StateClosed
	d.LastError = constant.Empty
}

// Close discards the draft and returns the files to release.
func (d *Draft) Close() []uploadModel.LocalFile {
	files := d.Locals()

	d.State = StateClosed
	d.Images = nil

	return files
}
