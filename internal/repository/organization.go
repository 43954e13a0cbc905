// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindFirst(ctx context.Context) (*model.Organization, error)
	OrgForPendingEmail(ctx context.Context, email string) (uuid.UUID, bool, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// FindFirst returns the oldest organization; open signup falls back to it
// when no default org is configured.
func (r *OrganizationRepository) FindFirst(ctx context.Context) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Order("created_at").First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoOrganization
		}
		return nil, fmt.Errorf("finding first organization: %w", err)
	}
	return &org, nil
}

// OrgForPendingEmail returns the org of the first pending share for email,
// so a signup lands in the org that invited them.
func (r *OrganizationRepository) OrgForPendingEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	var pending model.PendingDatasetShare
	err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at").First(&pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("finding pending share org: %w", err)
	}
	return pending.OrgID, true, nil
}
