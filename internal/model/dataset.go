// internal/model/dataset.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type DatasetStatus string

const (
	DatasetDraft     DatasetStatus = "draft"
	DatasetPublished DatasetStatus = "published"
	// DatasetArchived is reserved; no core operation produces it.
	DatasetArchived DatasetStatus = "archived"
)

// Dataset lifecycle: draft -> published, one-way. Only a draft accepts new
// unlinked asset slots plus publish; a published dataset accepts only asset
// append followed by item append.
type Dataset struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID           uuid.UUID     `gorm:"type:uuid;not null;index:ix_datasets_org_status" json:"org_id"`
	Name            string        `gorm:"type:text;not null" json:"name"`
	Description     string        `gorm:"type:text" json:"description"`
	Status          DatasetStatus `gorm:"type:text;not null;default:'draft';index:ix_datasets_org_status" json:"status"`
	CreatedByUserID uuid.UUID     `gorm:"type:uuid;not null" json:"created_by_user_id"`
	Tags            StringArray   `gorm:"type:text[]" json:"tags"`
	CreatedAt       time.Time     `json:"created_at"`
	PublishedAt     *time.Time    `json:"published_at"`
}

// Writable reports whether the dataset accepts new asset slots and uploads.
func (d *Dataset) Writable() bool {
	return d.Status == DatasetDraft || d.Status == DatasetPublished
}
