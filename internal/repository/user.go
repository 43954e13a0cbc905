// internal/repository/user.go
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

type UserRepositoryIface interface {
	CreateWithPendingShares(ctx context.Context, user *model.User) (int, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindActiveByID(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	FindActiveByEmailInOrg(ctx context.Context, email string, orgID uuid.UUID) (*model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithPendingShares creates the user and converts every pending share
// for their email into a DatasetAccess row, deleting the pending rows, all in
// one transaction. Returns the number of shares converted.
func (r *UserRepository) CreateWithPendingShares(ctx context.Context, user *model.User) (int, error) {
	converted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		var pending []*model.PendingDatasetShare
		if err := tx.Where("org_id = ? AND email = ?", user.OrgID, user.Email).Find(&pending).Error; err != nil {
			return fmt.Errorf("finding pending shares: %w", err)
		}

		for _, p := range pending {
			access := &model.DatasetAccess{
				OrgID:           p.OrgID,
				DatasetID:       p.DatasetID,
				UserID:          user.ID,
				AccessRole:      p.AccessRole,
				CreatedByUserID: p.CreatedByUserID,
			}
			if err := tx.Create(access).Error; err != nil {
				return fmt.Errorf("converting pending share: %w", err)
			}
			if err := tx.Delete(p).Error; err != nil {
				return fmt.Errorf("deleting pending share: %w", err)
			}
			converted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return converted, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindActiveByID loads a user scoped to their organization; inactive users
// are invisible to authentication.
func (r *UserRepository) FindActiveByID(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ? AND is_active = ?", id, orgID, true).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindActiveByEmailInOrg(ctx context.Context, email string, orgID uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).
		Where("email = ? AND org_id = ? AND is_active = ?", email, orgID, true).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}
