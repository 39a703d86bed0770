package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/permissions"
)

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{
		"endpoints": [
			{"path": "/v1/admin", "method": "*", "permissions": ["admin"]},
			{"path": "/v1/admin/me", "method": "GET", "permissions": ["admin", "editor"]}
		]
	}`))
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		method   string
		expected []string
	}{
		{name: "prefix rule", path: "/v1/admin/portfolio/1", method: http.MethodPut, expected: []string{"admin"}},
		{name: "exact prefix", path: "/v1/admin", method: http.MethodGet, expected: []string{"admin"}},
		{name: "more specific rule", path: "/v1/admin/me", method: http.MethodGet, expected: []string{"admin", "editor"}},
		{name: "method mismatch falls back", path: "/v1/admin/me", method: http.MethodPost, expected: []string{"admin"}},
		{name: "similar prefix is not covered", path: "/v1/administrator", method: http.MethodGet},
		{name: "public route", path: "/v1/portfolio", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, data.FindPermissions(tt.path, tt.method).Permissions)
		})
	}
}

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/admin/drafts", http.MethodPost).Permissions)
}
