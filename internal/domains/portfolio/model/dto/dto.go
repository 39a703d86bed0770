package dto

import (
	"slices"
	"strings"

	"folio/internal/domains/portfolio/model"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	gModel "folio/shared/model"
	"folio/shared/timezone"

	"github.com/google/uuid"
)

// SectionPayload is the flattened create/update body. Images is the complete
// ordered list of image URLs; on update it replaces the stored list.
type SectionPayload struct {
	Title    string   `json:"title"              validate:"required,notblank,max=200"`
	Content  string   `json:"content"            validate:"required,notblank"`
	Story    *string  `json:"story,omitempty"`
	Category string   `json:"category"           validate:"required,notblank,max=100"`
	Location *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Date     *string  `json:"date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	Images   []string `json:"images"             validate:"omitempty,dive,required,url"`
}

func (p *SectionPayload) story() *string {
	if p.Story != nil && strings.TrimSpace(*p.Story) != constant.Empty {
		return p.Story
	}

	content := p.Content

	return &content
}

func (p *SectionPayload) location() *string {
	if p.Location == nil || strings.TrimSpace(*p.Location) == constant.Empty {
		return nil
	}

	location := strings.TrimSpace(*p.Location)

	return &location
}

func (p *SectionPayload) date() string {
	if p.Date == nil {
		return constant.Empty
	}

	return *p.Date
}

func (p *SectionPayload) ToModel(user string) (model.Section, error) {
	date, err := timezone.ParseDate(p.date())
	if err != nil {
		return model.Section{}, err
	}

	now := timezone.Now()

	return model.Section{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(p.Title),
		Content:  p.Content,
		Story:    p.story(),
		Category: strings.TrimSpace(p.Category),
		Location: p.location(),
		Date:     date,
		Metadata: gModel.NewMetadata(user, now),
	}, nil
}

// ToUpdateFields lists every column of the section so an update fully
// replaces the stored values, clearing optional ones left empty.
func (p *SectionPayload) ToUpdateFields(user string) (map[string]any, error) {
	date, err := timezone.ParseDate(p.date())
	if err != nil {
		return nil, err
	}

	return gModel.Stamp(map[string]any{
		model.FieldTitle:    strings.TrimSpace(p.Title),
		model.FieldContent:  p.Content,
		model.FieldStory:    p.story(),
		model.FieldCategory: strings.TrimSpace(p.Category),
		model.FieldLocation: p.location(),
		model.FieldDate:     date,
	}, user, timezone.Now()), nil
}

// ToImages numbers the URLs by position: display order equals the index.
func (p *SectionPayload) ToImages(sectionID string) []model.SectionImage {
	now := timezone.Now()
	images := make([]model.SectionImage, len(p.Images))

	for i, url := range p.Images {
		images[i] = model.SectionImage{
			ID:           uuid.NewString(),
			SectionID:    sectionID,
			ImageURL:     url,
			DisplayOrder: i,
			CreatedAt:    now,
		}
	}

	return images
}

type SectionFilter struct {
	Category string `json:"category"`
}

func (f SectionFilter) ToFilterGroup() gDto.FilterGroup {
	if strings.TrimSpace(f.Category) == constant.Empty {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategory,
				Value:    strings.TrimSpace(f.Category),
				Operator: gDto.FilterOperatorEqFold,
				Table:    model.TableName,
			},
		},
	}
}

type ImageResponse struct {
	ID           string  `json:"id"`
	ImageURL     string  `json:"image_url"`
	Caption      *string `json:"caption,omitempty"`
	DisplayOrder int     `json:"display_order"`
}

type SectionResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Story         *string         `json:"story,omitempty"`
	Category      string          `json:"category"`
	Location      *string         `json:"location,omitempty"`
	Date          string          `json:"date,omitempty"`
	ImageURL      *string         `json:"image_url"`
	Images        []string        `json:"images"`
	SectionImages []ImageResponse `json:"section_images"`
	gDto.Metadata
}

// FromModel projects a section with its images. ImageURL is the cover: the
// image with the lowest display order.
func (r *SectionResponse) FromModel(section model.Section, images []model.SectionImage) {
	r.ID = section.ID
	r.Title = section.Title
	r.Content = section.Content
	r.Story = section.Story
	r.Category = section.Category
	r.Location = section.Location
	r.Date = timezone.FormatDate(section.Date)
	r.Metadata.FromModel(section.Metadata)

	ordered := slices.Clone(images)
	slices.SortStableFunc(ordered, func(a, b model.SectionImage) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	r.ImageURL = nil
	r.Images = make([]string, len(ordered))
	r.SectionImages = make([]ImageResponse, len(ordered))

	for i, image := range ordered {
		r.Images[i] = image.ImageURL
		r.SectionImages[i] = ImageResponse{
			ID:           image.ID,
			ImageURL:     image.ImageURL,
			Caption:      image.Caption,
			DisplayOrder: image.DisplayOrder,
		}
	}

	if len(ordered) > 0 {
		cover := ordered[0].ImageURL
		r.ImageURL = &cover
	}
}

type GetSectionsResponse struct {
	Sections  []SectionResponse `json:"sections"`
	TotalData int               `json:"total_data"`
}

func (r *GetSectionsResponse) FromModels(sections []model.Section, images []model.SectionImage) {
	grouped := model.GroupImages(images)

	r.TotalData = len(sections)
	r.Sections = make([]SectionResponse, len(sections))

	for i, section := range sections {
		r.Sections[i].FromModel(section, grouped[section.ID])
	}
}

// SectionIDs collects the ids of sections, in order.
func SectionIDs(sections []model.Section) []string {
	ids := make([]string, len(sections))
	for i, section := range sections {
		ids[i] = section.ID
	}

	return ids
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
