package s3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/infras/s3"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "public domain",
			url:      "https://cdn.example.com/portfolio/abc.jpg",
			expected: "portfolio/abc.jpg",
		},
		{
			name:     "path style endpoint",
			url:      "https://s3.example.com/photos/portfolio/abc.jpg",
			expected: "portfolio/abc.jpg",
		},
		{
			name:     "foreign url",
			url:      "https://res.cloudinary.com/demo/image/upload/abc.jpg",
			expected: "",
		},
		{
			name:     "bare domain",
			url:      "https://cdn.example.com/",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := s3.ObjectKeyFromURL("https://cdn.example.com/", "https://s3.example.com", "photos", tt.url)
			assert.Equal(t, tt.expected, key)
		})
	}
}
