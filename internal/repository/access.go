// internal/repository/access.go
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

// ShareEntry is one row of a dataset's share list: either an active grant
// (UserID set) or a pending email share.
type ShareEntry struct {
	UserID     *uuid.UUID `json:"user_id"`
	Email      string     `json:"email"`
	AccessRole string     `json:"access_role"`
	Pending    bool       `json:"pending"`
}

type AccessRepositoryIface interface {
	HasAccess(ctx context.Context, datasetID, userID uuid.UUID) (bool, error)
	Grant(ctx context.Context, access *model.DatasetAccess) (bool, error)
	Revoke(ctx context.Context, orgID, datasetID, userID uuid.UUID) error
	GrantPending(ctx context.Context, share *model.PendingDatasetShare) (bool, error)
	ListShares(ctx context.Context, orgID, datasetID uuid.UUID) ([]ShareEntry, error)
}

type AccessRepository struct {
	db *gorm.DB
}

func NewAccessRepository(db *gorm.DB) *AccessRepository {
	return &AccessRepository{db: db}
}

func (r *AccessRepository) HasAccess(ctx context.Context, datasetID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DatasetAccess{}).
		Where("dataset_id = ? AND user_id = ?", datasetID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking dataset access: %w", err)
	}
	return count > 0, nil
}

// Grant inserts an ACL row unless one already exists for the (dataset, user)
// pair; sharing is idempotent. Returns whether a row was created.
func (r *AccessRepository) Grant(ctx context.Context, access *model.DatasetAccess) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.DatasetAccess
		err := tx.Where("dataset_id = ? AND user_id = ?", access.DatasetID, access.UserID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("checking existing access: %w", err)
		}
		if err := tx.Create(access).Error; err != nil {
			return fmt.Errorf("creating access: %w", err)
		}
		created = true
		return nil
	})
	return created, err
}

func (r *AccessRepository) Revoke(ctx context.Context, orgID, datasetID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("org_id = ? AND dataset_id = ? AND user_id = ?", orgID, datasetID, userID).
		Delete(&model.DatasetAccess{})
	if result.Error != nil {
		return fmt.Errorf("revoking access: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GrantPending inserts a pending email share unless one already exists for
// the (dataset, email) pair. Returns whether a row was created.
func (r *AccessRepository) GrantPending(ctx context.Context, share *model.PendingDatasetShare) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PendingDatasetShare
		err := tx.Where("dataset_id = ? AND email = ?", share.DatasetID, share.Email).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("checking existing pending share: %w", err)
		}
		if err := tx.Create(share).Error; err != nil {
			return fmt.Errorf("creating pending share: %w", err)
		}
		created = true
		return nil
	})
	return created, err
}

// ListShares returns active grants (joined to user emails) followed by
// pending email shares.
func (r *AccessRepository) ListShares(ctx context.Context, orgID, datasetID uuid.UUID) ([]ShareEntry, error) {
	type grantRow struct {
		UserID     uuid.UUID
		Email      string
		AccessRole string
	}
	var grants []grantRow
	err := r.db.WithContext(ctx).
		Model(&model.DatasetAccess{}).
		Select("dataset_accesses.user_id, users.email, dataset_accesses.access_role").
		Joins("JOIN users ON users.id = dataset_accesses.user_id").
		Where("dataset_accesses.org_id = ? AND dataset_accesses.dataset_id = ?", orgID, datasetID).
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("listing access grants: %w", err)
	}

	var pending []*model.PendingDatasetShare
	err = r.db.WithContext(ctx).
		Where("org_id = ? AND dataset_id = ?", orgID, datasetID).
		Find(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("listing pending shares: %w", err)
	}

	out := make([]ShareEntry, 0, len(grants)+len(pending))
	for _, g := range grants {
		id := g.UserID
		out = append(out, ShareEntry{UserID: &id, Email: g.Email, AccessRole: g.AccessRole})
	}
	for _, p := range pending {
		out = append(out, ShareEntry{Email: p.Email, AccessRole: p.AccessRole, Pending: true})
	}
	return out, nil
}
