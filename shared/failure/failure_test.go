package failure_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"folio/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "title is required",
	}

	assert.Equal(t, "title is required", f.Error())
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("validation failed"))

	var f *failure.Failure
	assert.True(t, errors.As(err, &f))
	assert.Equal(t, http.StatusBadRequest, f.Code)
	assert.Equal(t, "validation failed", f.Message)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid credentials",
			input:    failure.Auth(failure.AuthInvalidCredentials, "invalid email or password", nil),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "auth error wrapping a validation failure",
			input:    failure.Auth(failure.AuthInvalidCredentials, "invalid email or password", failure.BadRequestFromString("Email must be a valid email address")),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "auth network",
			input:    failure.Auth(failure.AuthNetwork, "identity provider unreachable", nil),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "store not found",
			input:    failure.StoreNotFoundError("portfolio section"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped store permission",
			input:    fmt.Errorf("save: %w", failure.Store(failure.StorePermission, "denied", nil)),
			expected: http.StatusForbidden,
		},
		{
			name:     "upload quota",
			input:    failure.Upload(failure.UploadQuota, "too large", nil),
			expected: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "upload invalid",
			input:    failure.Upload(failure.UploadInvalid, "unsupported type", nil),
			expected: http.StatusBadRequest,
		},
		{
			name:     "forbidden",
			input:    failure.ForbiddenError,
			expected: http.StatusForbidden,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestStoreKindOf(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected failure.StoreKind
	}{
		{name: "no rows", input: sql.ErrNoRows, expected: failure.StoreNotFound},
		{name: "deadline", input: context.DeadlineExceeded, expected: failure.StoreTransient},
		{name: "connection failure", input: &pq.Error{Code: "08006"}, expected: failure.StoreTransient},
		{name: "serialization failure", input: &pq.Error{Code: "40001"}, expected: failure.StoreTransient},
		{name: "insufficient privilege", input: &pq.Error{Code: "42501"}, expected: failure.StorePermission},
		{name: "unique violation", input: &pq.Error{Code: "23505"}, expected: failure.StoreValidation},
		{name: "invalid text", input: &pq.Error{Code: "22P02"}, expected: failure.StoreValidation},
		{name: "syntax error", input: &pq.Error{Code: "42601"}, expected: failure.StoreUnknown},
		{name: "plain error", input: errors.New("boom"), expected: failure.StoreUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.StoreKindOf(fmt.Errorf("wrapped: %w", tt.input)))
		})
	}
}

func TestClassifyStore(t *testing.T) {
	assert.Nil(t, failure.ClassifyStore("ignored", nil))

	notFound := failure.NotFound("article not found")
	assert.Same(t, notFound, failure.ClassifyStore("ignored", notFound))

	err := failure.ClassifyStore("failed to insert article", &pq.Error{Code: "23502"})
	assert.True(t, failure.IsStoreKind(err, failure.StoreValidation))
	assert.Equal(t, "failed to insert article", err.Error())

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestKindPredicates(t *testing.T) {
	authErr := fmt.Errorf("login: %w", failure.Auth(failure.AuthExpired, "session expired", nil))
	assert.True(t, failure.IsAuthKind(authErr, failure.AuthExpired))
	assert.False(t, failure.IsAuthKind(authErr, failure.AuthInvalidCredentials))

	uploadErr := failure.Upload(failure.UploadNetwork, "upload failed", errors.New("dial tcp"))
	assert.True(t, failure.IsUploadKind(uploadErr, failure.UploadNetwork))
	assert.False(t, failure.IsStoreKind(uploadErr, failure.StoreUnknown))
	assert.EqualError(t, errors.Unwrap(uploadErr), "dial tcp")
}

type statusError int

func (e statusError) Error() string       { return fmt.Sprintf("status %d", int(e)) }
func (e statusError) HTTPStatusCode() int { return int(e) }

func TestUploadKindOf(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected failure.UploadKind
	}{
		{name: "payload too large", input: statusError(413), expected: failure.UploadQuota},
		{name: "rate limited", input: statusError(429), expected: failure.UploadQuota},
		{name: "bad request", input: statusError(400), expected: failure.UploadInvalid},
		{name: "provider down", input: statusError(503), expected: failure.UploadNetwork},
		{name: "forbidden", input: statusError(403), expected: failure.UploadUnknown},
		{name: "deadline", input: context.DeadlineExceeded, expected: failure.UploadNetwork},
		{name: "dial failure", input: &net.OpError{Op: "dial", Err: errors.New("refused")}, expected: failure.UploadNetwork},
		{name: "plain error", input: errors.New("boom"), expected: failure.UploadUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.UploadKindOf(fmt.Errorf("wrapped: %w", tt.input)))
		})
	}

	kept := failure.Upload(failure.UploadInvalid, "bad file", nil)
	assert.Same(t, kept, failure.ClassifyUpload("ignored", kept))
	assert.Nil(t, failure.ClassifyUpload("ignored", nil))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "auth", input: failure.Auth(failure.AuthExpired, "expired", nil), expected: "auth.expired"},
		{name: "wrapped store", input: fmt.Errorf("get: %w", failure.StoreNotFoundError("article")), expected: "store.not_found"},
		{name: "upload", input: failure.Upload(failure.UploadQuota, "too large", nil), expected: "upload.quota"},
		{name: "failure", input: failure.Conflict("busy"), expected: "http.409"},
		{name: "plain", input: errors.New("boom"), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.Category(tt.input))
		})
	}
}
