package dto

import (
	"strings"

	"folio/internal/domains/user/model"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	gModel "folio/shared/model"
	"folio/shared/timezone"

	"github.com/google/uuid"
)

// CreateAdminRequest seeds the bootstrap admin account from configuration.
type CreateAdminRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	FullName string
}

// Normalize trims and lowercases the email so configured values with stray
// whitespace or capitals still match the stored account.
func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *CreateAdminRequest) ToModel(hashedPassword string) model.User {
	now := timezone.Now()

	var fullName *string
	if name := strings.TrimSpace(r.FullName); name != constant.Empty {
		fullName = &name
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Role:     constant.RoleAdmin,
		FullName: fullName,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, now),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}
