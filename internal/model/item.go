// internal/model/item.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Item belongs to a dataset. Type drives which registry entry validates the
// payload. Items are created only inside a successful publish/append
// transaction; they never exist for a draft dataset.
type Item struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index:ix_items_org_dataset" json:"org_id"`
	DatasetID uuid.UUID `gorm:"type:uuid;not null;index:ix_items_org_dataset" json:"dataset_id"`
	Type      string    `gorm:"type:text;not null" json:"type"`
	Title     string    `gorm:"type:text" json:"title,omitempty"`
	Summary   string    `gorm:"type:text" json:"summary,omitempty"`
	Payload   JSONMap   `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// Annotation attaches schema-tagged data to an item; 0..N per item.
type Annotation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null" json:"org_id"`
	DatasetID uuid.UUID `gorm:"type:uuid;not null" json:"dataset_id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Schema    string    `gorm:"column:schema;type:text;not null" json:"schema"`
	Data      JSONMap   `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
