// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant boundary. Every other entity carries an OrgID
// that must match the organization of any principal operating on it.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
