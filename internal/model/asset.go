// internal/model/asset.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
	AssetAudio AssetKind = "audio"
	AssetOther AssetKind = "other"
)

// ValidAssetKind reports whether kind is one of the allocatable kinds.
func ValidAssetKind(kind string) bool {
	switch AssetKind(kind) {
	case AssetImage, AssetVideo, AssetAudio, AssetOther:
		return true
	}
	return false
}

// Asset is a blob descriptor. ItemID is nil while the asset is uploaded but
// not yet attached to any item; it is set exactly once, at publish/append
// time, and never cleared.
type Asset struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID       uuid.UUID  `gorm:"type:uuid;not null;index:ix_assets_org_dataset" json:"org_id"`
	DatasetID   uuid.UUID  `gorm:"type:uuid;not null;index:ix_assets_org_dataset" json:"dataset_id"`
	ItemID      *uuid.UUID `gorm:"type:uuid" json:"item_id"`
	Kind        AssetKind  `gorm:"type:text;not null" json:"kind"`
	StorageKey  string     `gorm:"type:text;not null" json:"storage_key"`
	ContentType string     `gorm:"type:text;not null" json:"content_type"`
	ByteSize    int64      `gorm:"type:bigint;not null" json:"byte_size"`
	SHA256      string     `gorm:"type:text" json:"sha256,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
