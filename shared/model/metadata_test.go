package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"folio/shared/constant"
	"folio/shared/model"
)

func TestNewMetadata(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	meta := model.NewMetadata("user-1", now)
	assert.Equal(t, model.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "user-1", ModifiedBy: "user-1"}, meta)

	anonymous := model.NewMetadata("", now)
	assert.Equal(t, constant.ContextSystem, anonymous.CreatedBy)
	assert.Equal(t, constant.ContextSystem, anonymous.ModifiedBy)
}

func TestTouch(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	meta := model.NewMetadata("user-1", created)
	meta.Touch("user-2", later)

	assert.Equal(t, created, meta.CreatedAt)
	assert.Equal(t, "user-1", meta.CreatedBy)
	assert.Equal(t, later, meta.ModifiedAt)
	assert.Equal(t, "user-2", meta.ModifiedBy)
}

func TestStamp(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	fields := model.Stamp(map[string]any{"title": "Dunes"}, "", now)

	assert.Equal(t, map[string]any{
		"title":                  "Dunes",
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.ContextSystem,
	}, fields)
}
