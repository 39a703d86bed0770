package model

import (
	"time"

	"folio/shared/constant"
)

// Metadata is the audit trail embedded in every stored record.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a record created by user at now.
func NewMetadata(user string, now time.Time) Metadata {
	if user == constant.Empty {
		user = constant.ContextSystem
	}

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// Touch records a modification on m.
func (m *Metadata) Touch(user string, now time.Time) {
	if user == constant.Empty {
		user = constant.ContextSystem
	}

	m.ModifiedAt = now
	m.ModifiedBy = user
}

// Stamp adds the modification columns to an update and returns it.
func Stamp(fields map[string]any, user string, now time.Time) map[string]any {
	if user == constant.Empty {
		user = constant.ContextSystem
	}

	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = user

	return fields
}
