package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/shared"
	"folio/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	published := shared.ConvertStringToBool("true")
	if assert.NotNil(t, published) {
		assert.True(t, *published)
	}

	draft := shared.ConvertStringToBool("0")
	if assert.NotNil(t, draft) {
		assert.False(t, *draft)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "session", shared.BuildCacheKey("session"))
	assert.Equal(t, "session:abc", shared.BuildCacheKey("session", "abc"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("sec-1", "id", "portfolio_sections")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(portfolio_sections.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "sec-1"}, args)
}

func TestFilterByIDs(t *testing.T) {
	empty := shared.FilterByIDs(nil, "section_id", "section_images")
	assert.Equal(t, dto.FilterGroup{}, empty)

	filter := shared.FilterByIDs([]string{"a", "b"}, "section_id", "section_images")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(section_images.section_id IN (:section_id_0, :section_id_1))", where)
	assert.Equal(t, map[string]any{"section_id_0": "a", "section_id_1": "b"}, args)
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 0, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
}
