package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"folio/infras/jwt"
	"folio/internal/domains/auth/model/dto"
	"folio/internal/domains/auth/session"
	"folio/shared/constant"
	"folio/shared/timezone"
)

func TestSignInRequest_NormalizedEmail(t *testing.T) {
	req := dto.SignInRequest{Email: "  Admin@Example.COM "}

	assert.Equal(t, "admin@example.com", req.NormalizedEmail())
}

func TestSession_FromToken(t *testing.T) {
	expiresAt := timezone.Now().Add(time.Hour)

	var sess dto.Session
	sess.FromToken(&jwt.Token{
		AccessToken: "signed",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   expiresAt,
		SessionID:   "sess-1",
	}, "user-1", "admin@example.com", constant.RoleAdmin)

	assert.Equal(t, "signed", sess.AccessToken)
	assert.Equal(t, "sess-1", sess.SessionID)
	assert.True(t, sess.IsAdmin())

	record := sess.ToRecord()
	assert.Equal(t, session.Record{
		SessionID: "sess-1",
		UserID:    "user-1",
		Email:     "admin@example.com",
		Role:      constant.RoleAdmin,
		ExpiresAt: expiresAt,
	}, record)
}

func TestSession_FromRecord(t *testing.T) {
	var sess dto.Session
	sess.FromRecord("signed", session.Record{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      constant.RoleAdmin,
		ExpiresAt: timezone.Now().Add(-time.Minute),
	})

	assert.Equal(t, int64(0), sess.ExpiresIn)
	assert.Equal(t, "user-1", sess.UserID)
}
