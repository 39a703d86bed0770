package dto

import (
	"strings"

	articleDto "folio/internal/domains/article/model/dto"
	"folio/internal/domains/editor/model"
	portfolioDto "folio/internal/domains/portfolio/model/dto"
	"folio/shared/constant"
	"folio/shared/timezone"
)

type OpenRequest struct {
	Kind     model.Kind `json:"kind"                validate:"required,oneof=portfolio article"`
	RecordID string     `json:"record_id,omitempty" validate:"omitempty,uuid"`
}

// FieldsPatch updates only the staged fields that are present.
type FieldsPatch struct {
	Title     *string `json:"title,omitempty"     validate:"omitempty,max=200"`
	Content   *string `json:"content,omitempty"`
	Story     *string `json:"story,omitempty"`
	Category  *string `json:"category,omitempty"  validate:"omitempty,max=100"`
	Location  *string `json:"location,omitempty"  validate:"omitempty,max=200"`
	Date      *string `json:"date,omitempty"      validate:"omitempty,datetime=2006-01-02"`
	Body      *string `json:"body,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"   validate:"omitempty,max=500"`
	Published *bool   `json:"published,omitempty"`
}

func (p *FieldsPatch) Apply(fields *model.Fields) {
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&fields.Title, p.Title)
	assign(&fields.Content, p.Content)
	assign(&fields.Story, p.Story)
	assign(&fields.Category, p.Category)
	assign(&fields.Location, p.Location)
	assign(&fields.Date, p.Date)
	assign(&fields.Body, p.Body)
	assign(&fields.Excerpt, p.Excerpt)

	if p.Published != nil {
		fields.Published = *p.Published
	}
}

// FieldsFromSection seeds an edit of a portfolio section.
func FieldsFromSection(section portfolioDto.SectionResponse) model.Fields {
	return model.Fields{
		Title:    section.Title,
		Content:  section.Content,
		Story:    deref(section.Story),
		Category: section.Category,
		Location: deref(section.Location),
		Date:     section.Date,
	}
}

// FieldsFromArticle seeds an edit of an article.
func FieldsFromArticle(article articleDto.ArticleResponse) model.Fields {
	return model.Fields{
		Title:     article.Title,
		Body:      article.Body,
		Excerpt:   deref(article.Excerpt),
		Published: article.Published,
	}
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

func optional(value string) *string {
	if strings.TrimSpace(value) == constant.Empty {
		return nil
	}

	return &value
}

// ToSectionPayload builds the portfolio payload with the final image list.
func ToSectionPayload(fields model.Fields, images []string) portfolioDto.SectionPayload {
	return portfolioDto.SectionPayload{
		Title:    fields.Title,
		Content:  fields.Content,
		Story:    optional(fields.Story),
		Category: fields.Category,
		Location: optional(fields.Location),
		Date:     optional(fields.Date),
		Images:   images,
	}
}

// ToArticlePayload builds the article payload. The first image is the cover.
func ToArticlePayload(fields model.Fields, images []string) articleDto.ArticlePayload {
	published := fields.Published
	payload := articleDto.ArticlePayload{
		Title:     fields.Title,
		Body:      fields.Body,
		Excerpt:   optional(fields.Excerpt),
		Published: &published,
	}

	if len(images) > 0 {
		payload.CoverImageURL = &images[0]
	}

	return payload
}

type FieldsResponse struct {
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Story     string `json:"story,omitempty"`
	Category  string `json:"category,omitempty"`
	Location  string `json:"location,omitempty"`
	Date      string `json:"date,omitempty"`
	Body      string `json:"body,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
	Published bool   `json:"published"`
}

type ImageResponse struct {
	Index      int              `json:"index"`
	Provenance model.Provenance `json:"provenance"`
	URL        string           `json:"url,omitempty"`
	Name       string           `json:"name,omitempty"`
	Size       int64            `json:"size,omitempty"`
}

type DraftResponse struct {
	ID        string          `json:"id"`
	Kind      model.Kind      `json:"kind"`
	Mode      model.Mode      `json:"mode"`
	RecordID  string          `json:"record_id,omitempty"`
	State     model.State     `json:"state"`
	Fields    FieldsResponse  `json:"fields"`
	Images    []ImageResponse `json:"images"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt string          `json:"created_at"`
	TouchedAt string          `json:"touched_at"`
}

func (r *DraftResponse) FromModel(draft *model.Draft) {
	r.ID = draft.ID
	r.Kind = draft.Kind
	r.Mode = draft.Mode
	r.RecordID = draft.RecordID
	r.State = draft.State
	r.LastError = draft.LastError
	r.CreatedAt = timezone.Format(draft.CreatedAt, constant.DateFormat)
	r.TouchedAt = timezone.Format(draft.TouchedAt, constant.DateFormat)
	r.Fields = FieldsResponse(draft.Fields)

	r.Images = make([]ImageResponse, len(draft.Images))
	for i, image := range draft.Images {
		r.Images[i] = ImageResponse{Index: i, Provenance: image.Provenance, URL: image.URL}

		if image.File != nil {
			r.Images[i].Name = image.File.Name()
			r.Images[i].Size = image.File.Size()
		}
	}
}

// SaveResponse carries the saved record id and the refreshed list of its
// kind.
type SaveResponse struct {
	RecordID  string                            `json:"record_id"`
	Kind      model.Kind                        `json:"kind"`
	Portfolio *portfolioDto.GetSectionsResponse `json:"portfolio,omitempty"`
	Articles  *articleDto.GetArticlesResponse   `json:"articles,omitempty"`
}
