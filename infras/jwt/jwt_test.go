package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/config"
	"folio/infras/jwt"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "folio"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", 30)

	token, err := svc.Generate("user-1", "admin@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(1800), token.ExpiresIn)
	assert.NotEmpty(t, token.SessionID)

	claims, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, token.SessionID, claims.SessionID)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := newService("secret", 30).Generate("user-1", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = newService("other", 30).Validate(token.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidate_Malformed(t *testing.T) {
	_, err := newService("secret", 30).Validate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestGenerate_DefaultExpiry(t *testing.T) {
	token, err := newService("secret", 0).Generate("user-1", "admin@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(60*60), token.ExpiresIn)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrInvalidHeader)
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer from-header")
		req.AddCookie(&http.Cookie{Name: "folio_session", Value: "from-cookie"})

		assert.Equal(t, "from-header", jwt.TokenFromRequest(req, "folio_session"))
	})

	t.Run("cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "folio_session", Value: "from-cookie"})

		assert.Equal(t, "from-cookie", jwt.TokenFromRequest(req, "folio_session"))
	})

	t.Run("absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")

		assert.Empty(t, jwt.TokenFromRequest(req, "folio_session"))
	})
}
