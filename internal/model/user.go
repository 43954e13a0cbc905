// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RolePublisher UserRole = "publisher"
	RoleViewer    UserRole = "viewer"
)

// CanPublish reports whether the role may run mutating ingest operations.
// Admins and publishers have implicit org-wide dataset access; viewers see
// only datasets with an explicit DatasetAccess row.
func (r UserRole) CanPublish() bool {
	return r == RoleAdmin || r == RolePublisher
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID        uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'viewer'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
