package model

import (
	"time"

	"folio/shared/model"
)

const (
	TableName      = "portfolio_sections"
	EntityName     = "portfolio section"
	ImageTableName = "section_images"
	ImageEntity    = "section image"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldStory        = "story"
	FieldCategory     = "category"
	FieldLocation     = "location"
	FieldDate         = "date"
	FieldSectionID    = "section_id"
	FieldDisplayOrder = "display_order"
)

// Section is a portfolio project. Its images live in section_images.
type Section struct {
	ID       string     `db:"id"`
	Title    string     `db:"title"`
	Content  string     `db:"content"`
	Story    *string    `db:"story"`
	Category string     `db:"category"`
	Location *string    `db:"location"`
	Date     *time.Time `db:"date"`
	model.Metadata
}

// SectionImage is one image of a section. DisplayOrder is zero-based and
// unique per section; order 0 is the cover.
type SectionImage struct {
	ID           string    `db:"id"`
	SectionID    string    `db:"section_id"`
	ImageURL     string    `db:"image_url"`
	Caption      *string   `db:"caption"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// GroupImages buckets images by section id, keeping their order.
func GroupImages(images []SectionImage) map[string][]SectionImage {
	grouped := make(map[string][]SectionImage)

	for _, image := range images {
		grouped[image.SectionID] = append(grouped[image.SectionID], image)
	}

	return grouped
}
