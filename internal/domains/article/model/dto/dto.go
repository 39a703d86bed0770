package dto

import (
	"strings"
	"time"

	"folio/internal/domains/article/model"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	gModel "folio/shared/model"
	"folio/shared/timezone"

	"github.com/google/uuid"
)

type ArticlePayload struct {
	Title         string  `json:"title"                     validate:"required,notblank,max=200"`
	Body          string  `json:"body"                      validate:"required,notblank"`
	Excerpt       *string `json:"excerpt,omitempty"         validate:"omitempty,max=500"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	Published     *bool   `json:"published,omitempty"`
}

func optional(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == constant.Empty {
		return nil
	}

	trimmed := strings.TrimSpace(*value)

	return &trimmed
}

func (p *ArticlePayload) ToModel(user string) model.Article {
	now := timezone.Now()

	article := model.Article{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(p.Title),
		Body:          p.Body,
		Excerpt:       optional(p.Excerpt),
		CoverImageURL: optional(p.CoverImageURL),
		Metadata:      gModel.NewMetadata(user, now),
	}

	if p.Published != nil && *p.Published {
		article.PublishedAt = &now
	}

	return article
}

// ToUpdateFields replaces the content columns. The publish state only
// changes when Published is set; an already published article keeps its
// original publish time.
func (p *ArticlePayload) ToUpdateFields(user string, current model.Article) map[string]any {
	now := timezone.Now()

	fields := gModel.Stamp(map[string]any{
		model.FieldTitle:         strings.TrimSpace(p.Title),
		model.FieldBody:          p.Body,
		model.FieldExcerpt:       optional(p.Excerpt),
		model.FieldCoverImageURL: optional(p.CoverImageURL),
	}, user, now)

	if p.Published == nil {
		return fields
	}

	switch {
	case *p.Published && !current.Published():
		fields[model.FieldPublishedAt] = &now
	case !*p.Published:
		fields[model.FieldPublishedAt] = (*time.Time)(nil)
	}

	return fields
}

type ArticleFilter struct {
	PublishedOnly bool
}

func (f ArticleFilter) ToFilterGroup() gDto.FilterGroup {
	if !f.PublishedOnly {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPublishedAt,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}
}

type ArticleResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	BodyHTML      string  `json:"body_html,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Published     bool    `json:"published"`
	PublishedAt   *string `json:"published_at"`
	gDto.Metadata
}

func (r *ArticleResponse) FromModel(article model.Article) {
	r.ID = article.ID
	r.Title = article.Title
	r.Body = article.Body
	r.Excerpt = article.Excerpt
	r.CoverImageURL = article.CoverImageURL
	r.Published = article.Published()
	r.PublishedAt = nil
	r.Metadata.FromModel(article.Metadata)

	if article.PublishedAt != nil {
		publishedAt := timezone.Format(*article.PublishedAt, constant.DateFormat)
		r.PublishedAt = &publishedAt
	}
}

type GetArticlesResponse struct {
	Articles  []ArticleResponse `json:"articles"`
	TotalData int               `json:"total_data"`
}

func (r *GetArticlesResponse) FromModels(articles []model.Article) {
	r.TotalData = len(articles)
	r.Articles = make([]ArticleResponse, len(articles))

	for i, article := range articles {
		r.Articles[i].FromModel(article)
	}
}
