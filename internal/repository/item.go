// internal/repository/item.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
)

// ItemPage is a keyset-paginated slice of items ordered by
// (created_at DESC, id DESC).
type ItemPage struct {
	Items   []*model.Item
	HasMore bool
}

// ItemFilter narrows an item listing. Query is matched with LIKE against
// title and summary.
type ItemFilter struct {
	Type          string
	Query         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CursorTime    *time.Time
	CursorID      *uuid.UUID
	Limit         int
}

type ItemRepositoryIface interface {
	FindInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Item, error)
	ListByDataset(ctx context.Context, orgID, datasetID uuid.UUID, filter ItemFilter) (*ItemPage, error)
	CountByType(ctx context.Context, orgID, datasetID uuid.UUID) (map[string]int64, error)
	ListAnnotations(ctx context.Context, orgID, itemID uuid.UUID) ([]*model.Annotation, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding item: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) ListByDataset(ctx context.Context, orgID, datasetID uuid.UUID, filter ItemFilter) (*ItemPage, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 25
	}

	q := r.db.WithContext(ctx).
		Where("org_id = ? AND dataset_id = ?", orgID, datasetID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.CursorTime != nil && filter.CursorID != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			*filter.CursorTime, *filter.CursorTime, *filter.CursorID)
	}

	var items []*model.Item
	err := q.Order("created_at DESC, id DESC").Limit(limit + 1).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	page := &ItemPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.HasMore = true
	}
	return page, nil
}

func (r *ItemRepository) CountByType(ctx context.Context, orgID, datasetID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Select("type, count(id) as count").
		Where("org_id = ? AND dataset_id = ?", orgID, datasetID).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("counting items by type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}

func (r *ItemRepository) ListAnnotations(ctx context.Context, orgID, itemID uuid.UUID) ([]*model.Annotation, error) {
	var annotations []*model.Annotation
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND item_id = ?", orgID, itemID).
		Find(&annotations).Error
	if err != nil {
		return nil, fmt.Errorf("listing annotations: %w", err)
	}
	return annotations, nil
}
