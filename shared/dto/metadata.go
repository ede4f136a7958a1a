package dto

import (
	"chefbook/shared/constant"
	"chefbook/shared/model"
	"chefbook/shared/timezone"
)

// Metadata is the audit block of every response. UpdatedAt reports the record's modified_at.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(record model.Metadata) {
	m.CreatedAt = timezone.Format(record.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(record.ModifiedAt, constant.DateFormat)
	m.CreatedBy = record.CreatedBy
	m.ModifiedBy = record.ModifiedBy
}
