package dto

import (
	"strings"
	"time"

	"folio/infras/jwt"
	"folio/internal/domains/auth/session"
	"folio/shared/constant"
	gModel "folio/shared/model"
	"folio/shared/timezone"
)

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NormalizedEmail is the lookup key for the account.
func (r *SignInRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// Session is the capability handed to the admin after sign-in.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
	SessionID   string    `json:"-"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func (s *Session) FromToken(token *jwt.Token, userID, email, role string) {
	s.AccessToken = token.AccessToken
	s.TokenType = token.TokenType
	s.ExpiresIn = token.ExpiresIn
	s.ExpiresAt = token.ExpiresAt
	s.SessionID = token.SessionID
	s.UserID = userID
	s.Email = email
	s.Role = role
}

func (s *Session) FromRecord(token string, record session.Record) {
	s.AccessToken = token
	s.TokenType = "Bearer"
	s.ExpiresAt = record.ExpiresAt
	s.ExpiresIn = max(int64(record.ExpiresAt.Sub(timezone.Now()).Seconds()), 0)
	s.SessionID = record.SessionID
	s.UserID = record.UserID
	s.Email = record.Email
	s.Role = record.Role
}

func (s *Session) ToRecord() session.Record {
	return session.Record{
		SessionID: s.SessionID,
		UserID:    s.UserID,
		Email:     s.Email,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}

// IsAdmin reports whether the session may use the admin surface.
func (s *Session) IsAdmin() bool {
	return s.SessionID != constant.Empty && s.Role == constant.RoleAdmin
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

func (r UpdateLastLoginRequest) ToFields(modifiedBy string) map[string]any {
	return gModel.Stamp(map[string]any{"last_login": r.LastLogin}, modifiedBy, r.LastLogin)
}
