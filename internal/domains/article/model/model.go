package model

import (
	"time"

	"folio/shared/model"
)

const (
	TableName  = "articles"
	EntityName = "article"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldBody          = "body"
	FieldExcerpt       = "excerpt"
	FieldCoverImageURL = "cover_image_url"
	FieldPublishedAt   = "published_at"
)

// Article is a flat journal entry. A nil PublishedAt marks a draft.
type Article struct {
	ID            string     `db:"id"`
	Title         string     `db:"title"`
	Body          string     `db:"body"`
	Excerpt       *string    `db:"excerpt"`
	CoverImageURL *string    `db:"cover_image_url"`
	PublishedAt   *time.Time `db:"published_at"`
	model.Metadata
}

func (a Article) Published() bool {
	return a.PublishedAt != nil
}
