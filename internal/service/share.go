// internal/service/share.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

// ShareService manages viewer grants on datasets. Only admins and publishers
// may manage shares, and the target dataset is always resolved through the
// access gate first so an unauthorized caller learns nothing about it.
type ShareService struct {
	gate         *AccessGate
	accessRepo   repository.AccessRepositoryIface
	userRepo     repository.UserRepositoryIface
	auditService *AuditService
	validate     *validator.Validate
}

func NewShareService(
	gate *AccessGate,
	accessRepo repository.AccessRepositoryIface,
	userRepo repository.UserRepositoryIface,
	auditService *AuditService,
) *ShareService {
	return &ShareService{
		gate:         gate,
		accessRepo:   accessRepo,
		userRepo:     userRepo,
		auditService: auditService,
		validate:     validator.New(),
	}
}

// List returns the grants and pending email shares on a dataset.
func (s *ShareService) List(ctx context.Context, user *model.User, datasetID uuid.UUID) ([]repository.ShareEntry, error) {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanPublish() {
		return nil, domain.ErrUnauthorized
	}
	return s.accessRepo.ListShares(ctx, user.OrgID, dataset.ID)
}

type AddShareInput struct {
	Email string `json:"email" validate:"required,email"`
}

type AddShareOutput struct {
	Email   string `json:"email"`
	Pending bool   `json:"pending"`
	Created bool   `json:"created"`
}

// Add shares a dataset with an email address. If the email belongs to an
// active user in the organization the grant is immediate; otherwise a
// pending share is recorded and converted when that email signs up. Both
// paths are idempotent.
func (s *ShareService) Add(ctx context.Context, user *model.User, datasetID uuid.UUID, input AddShareInput) (*AddShareOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanPublish() {
		return nil, domain.ErrUnauthorized
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	target, err := s.userRepo.FindActiveByEmailInOrg(ctx, email, user.OrgID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("resolving share target: %w", err)
	}

	out := &AddShareOutput{Email: email}
	if target != nil {
		created, err := s.accessRepo.Grant(ctx, &model.DatasetAccess{
			OrgID:           user.OrgID,
			DatasetID:       dataset.ID,
			UserID:          target.ID,
			CreatedByUserID: user.ID,
		})
		if err != nil {
			return nil, err
		}
		out.Created = created
	} else {
		created, err := s.accessRepo.GrantPending(ctx, &model.PendingDatasetShare{
			OrgID:           user.OrgID,
			DatasetID:       dataset.ID,
			Email:           email,
			CreatedByUserID: user.ID,
		})
		if err != nil {
			return nil, err
		}
		out.Pending = true
		out.Created = created
	}

	if out.Created {
		s.auditService.Record(ctx, user.OrgID, user.ID, AuditShareGrant, map[string]interface{}{
			"dataset_id": dataset.ID,
			"email":      email,
			"pending":    out.Pending,
		})
	}
	return out, nil
}

// Remove revokes a user's grant on a dataset.
func (s *ShareService) Remove(ctx context.Context, user *model.User, datasetID, targetUserID uuid.UUID) error {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return err
	}
	if !user.Role.CanPublish() {
		return domain.ErrUnauthorized
	}

	if err := s.accessRepo.Revoke(ctx, user.OrgID, dataset.ID, targetUserID); err != nil {
		return err
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditShareRevoke, map[string]interface{}{
		"dataset_id":     dataset.ID,
		"target_user_id": targetUserID,
	})
	return nil
}
