// internal/repository/audit_event.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushilcs/data-viewer/internal/model"
)

type AuditRepositoryIface interface {
	Create(ctx context.Context, event *model.AuditEvent) error
	ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.AuditEvent, int64, error)
}

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, event *model.AuditEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("creating audit event: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.AuditEvent, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AuditEvent{}).Where("org_id = ?", orgID).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting audit events: %w", err)
	}

	var events []*model.AuditEvent
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing audit events: %w", err)
	}
	return events, count, nil
}
