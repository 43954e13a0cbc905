// internal/repository/dataset.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
)

// IngestItem is one manifest entry ready for commit: the item row, its
// annotation rows, and the asset ids it links.
type IngestItem struct {
	Item        *model.Item
	Annotations []*model.Annotation
	AssetIDs    []uuid.UUID
}

type DatasetRepositoryIface interface {
	Create(ctx context.Context, dataset *model.Dataset) error
	FindInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Dataset, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Dataset, error)
	ListSharedWithUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Dataset, error)
	CommitPublish(ctx context.Context, datasetID, orgID uuid.UUID, publishedAt time.Time, items []IngestItem) error
	CommitAppend(ctx context.Context, datasetID, orgID uuid.UUID, items []IngestItem) error
}

type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

func (r *DatasetRepository) Create(ctx context.Context, dataset *model.Dataset) error {
	if err := r.db.WithContext(ctx).Create(dataset).Error; err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	return nil
}

// FindInOrg looks a dataset up strictly inside an organization; anything else
// is domain.ErrNotFound.
func (r *DatasetRepository) FindInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Dataset, error) {
	var dataset model.Dataset
	err := r.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(&dataset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding dataset: %w", err)
	}
	return &dataset, nil
}

func (r *DatasetRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&datasets).Error
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	return datasets, nil
}

// ListSharedWithUser returns the datasets a viewer can see: those with a
// DatasetAccess row for them.
func (r *DatasetRepository) ListSharedWithUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.db.WithContext(ctx).
		Joins("JOIN dataset_accesses ON dataset_accesses.dataset_id = datasets.id AND dataset_accesses.user_id = ?", userID).
		Where("datasets.org_id = ?", orgID).
		Order("datasets.created_at DESC").
		Find(&datasets).Error
	if err != nil {
		return nil, fmt.Errorf("listing shared datasets: %w", err)
	}
	return datasets, nil
}

// CommitPublish is the commit phase of publish. The status flip is a
// conditional update on status = draft; losing the race to a concurrent
// publish surfaces as domain.ErrDatasetNotDraft with no rows written.
func (r *DatasetRepository) CommitPublish(ctx context.Context, datasetID, orgID uuid.UUID, publishedAt time.Time, items []IngestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Dataset{}).
			Where("id = ? AND org_id = ? AND status = ?", datasetID, orgID, model.DatasetDraft).
			Updates(map[string]interface{}{
				"status":       model.DatasetPublished,
				"published_at": publishedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("publishing dataset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrDatasetNotDraft
		}

		return createItems(tx, datasetID, orgID, items)
	})
}

// CommitAppend is the commit phase of append. The dataset row is locked for
// the duration so a concurrent publish or append serializes here; a
// non-published dataset surfaces as domain.ErrDatasetNotPublished.
func (r *DatasetRepository) CommitAppend(ctx context.Context, datasetID, orgID uuid.UUID, items []IngestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dataset model.Dataset
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND org_id = ?", datasetID, orgID).
			First(&dataset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("locking dataset: %w", err)
		}
		if dataset.Status != model.DatasetPublished {
			return domain.ErrDatasetNotPublished
		}

		return createItems(tx, datasetID, orgID, items)
	})
}

// createItems writes item and annotation rows and links referenced assets.
// Linking is conditional on item_id IS NULL; a shortfall in affected rows
// means some asset was concurrently claimed, and the whole transaction rolls
// back with domain.ErrAssetLinked.
func createItems(tx *gorm.DB, datasetID, orgID uuid.UUID, items []IngestItem) error {
	for _, entry := range items {
		if err := tx.Create(entry.Item).Error; err != nil {
			return fmt.Errorf("creating item: %w", err)
		}
		for _, ann := range entry.Annotations {
			ann.ItemID = entry.Item.ID
			if err := tx.Create(ann).Error; err != nil {
				return fmt.Errorf("creating annotation: %w", err)
			}
		}
		if len(entry.AssetIDs) == 0 {
			continue
		}
		result := tx.Model(&model.Asset{}).
			Where("id IN ? AND org_id = ? AND dataset_id = ? AND item_id IS NULL", entry.AssetIDs, orgID, datasetID).
			Update("item_id", entry.Item.ID)
		if result.Error != nil {
			return fmt.Errorf("linking assets: %w", result.Error)
		}
		if result.RowsAffected != int64(len(entry.AssetIDs)) {
			return domain.ErrAssetLinked
		}
	}
	return nil
}
