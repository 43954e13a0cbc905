// internal/model/access.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DatasetAccess is a per-dataset ACL row. Its existence lets a viewer see the
// dataset; admins and publishers bypass this check entirely.
type DatasetAccess struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID           uuid.UUID `gorm:"type:uuid;not null;index:ix_dataset_access_org_user" json:"org_id"`
	DatasetID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_dataset_access_dataset_user" json:"dataset_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_dataset_access_dataset_user;index:ix_dataset_access_org_user" json:"user_id"`
	AccessRole      string    `gorm:"type:text;not null;default:'viewer'" json:"access_role"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// PendingDatasetShare is an ACL row keyed by email for sharing with someone
// who has no account yet. It converts into a DatasetAccess row (and is
// deleted) the moment that email completes signup.
type PendingDatasetShare struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID           uuid.UUID `gorm:"type:uuid;not null;index:ix_pending_share_org_email" json:"org_id"`
	DatasetID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_pending_share_dataset_email" json:"dataset_id"`
	Email           string    `gorm:"type:citext;not null;uniqueIndex:uq_pending_share_dataset_email;index:ix_pending_share_org_email" json:"email"`
	AccessRole      string    `gorm:"type:text;not null;default:'viewer'" json:"access_role"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
