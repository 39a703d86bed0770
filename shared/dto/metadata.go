package dto

import (
	"folio/shared/constant"
	"folio/shared/model"
	"folio/shared/timezone"
)

// Metadata is the audit trail of a record. Audit users are omitted when the
// record was written by an anonymous or system caller.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = constant.Empty
	m.CreatedBy = auditUser(model.CreatedBy)
	m.ModifiedBy = auditUser(model.ModifiedBy)

	if !model.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	}
}

func auditUser(user string) string {
	if user == constant.ContextSystem {
		return constant.Empty
	}

	return user
}
