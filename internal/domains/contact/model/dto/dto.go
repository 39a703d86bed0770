package dto

import (
	"strings"

	"folio/internal/domains/contact/model"
	"folio/shared/constant"
	"folio/shared/timezone"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=100"`
	Email   string `json:"email"   validate:"required,email,max=200"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

// Origin describes where a submission came from.
type Origin struct {
	IPAddress string
	UserAgent string
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func (r *SubmitRequest) ToModel(origin Origin) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Message:   strings.TrimSpace(r.Message),
		IPAddress: optional(origin.IPAddress),
		UserAgent: optional(origin.UserAgent),
		CreatedAt: timezone.Now(),
	}
}

type MessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *MessageResponse) FromModel(message model.Message) {
	r.ID = message.ID
	r.Name = message.Name
	r.Email = message.Email
	r.Message = message.Message
	r.CreatedAt = timezone.Format(message.CreatedAt, constant.DateFormat)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(messages []model.Message, totalData, totalPage int) {
	r.TotalData = totalData
	r.TotalPage = totalPage
	r.Messages = make([]MessageResponse, len(messages))

	for i, message := range messages {
		r.Messages[i].FromModel(message)
	}
}

// Event is the record published for every submission.
type Event struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (e *Event) FromModel(message model.Message) {
	e.ID = message.ID
	e.Name = message.Name
	e.Email = message.Email
	e.Message = message.Message
	e.CreatedAt = timezone.Format(message.CreatedAt, constant.DateFormat)
}
