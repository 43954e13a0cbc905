// internal/model/audit_event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent records who did what: login, signup, view_dataset, view_item,
// mint_asset_url, publish_dataset, append_dataset, share changes.
type AuditEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	EventType string    `gorm:"type:text;not null" json:"event_type"`
	EventData JSONMap   `gorm:"type:jsonb" json:"event_data"`
	IP        string    `gorm:"type:text" json:"ip,omitempty"`
	UserAgent string    `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
