// internal/service/audit.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

// Audit event types recorded across the API surface.
const (
	AuditUserSignup      = "user.signup"
	AuditUserLogin       = "user.login"
	AuditDatasetCreate   = "dataset.create"
	AuditDatasetPublish  = "dataset.publish"
	AuditDatasetAppend   = "dataset.append"
	AuditDatasetView     = "dataset.view"
	AuditItemView        = "item.view"
	AuditAssetAllocate   = "asset.allocate"
	AuditAssetUpload     = "asset.upload"
	AuditAssetSignURL    = "asset.sign_url"
	AuditShareGrant      = "share.grant"
	AuditShareRevoke     = "share.revoke"
)

// AuditService records audit events best-effort: a failed write is logged and
// swallowed so auditing never fails the request that triggered it.
type AuditService struct {
	repo repository.AuditRepositoryIface
}

func NewAuditService(repo repository.AuditRepositoryIface) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(ctx context.Context, orgID, userID uuid.UUID, eventType string, data map[string]interface{}) {
	event := &model.AuditEvent{
		OrgID:     orgID,
		UserID:    userID,
		EventType: eventType,
		EventData: model.JSONMap(data),
	}
	if ip, ok := ctx.Value(ContextKeyIP).(string); ok {
		event.IP = ip
	}
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		event.UserAgent = ua
	}
	if err := s.repo.Create(ctx, event); err != nil {
		slog.Error("failed to record audit event",
			"event_type", eventType,
			"org_id", orgID,
			"error", err)
	}
}

// List returns an organization's audit history, newest first.
func (s *AuditService) List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.AuditEvent, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByOrg(ctx, orgID, offset, limit)
}
