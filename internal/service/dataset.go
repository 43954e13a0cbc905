// internal/service/dataset.go
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

// DatasetService is the read side: dataset listings, item pages, and item
// detail, all authorized through the access gate.
type DatasetService struct {
	gate         *AccessGate
	datasetRepo  repository.DatasetRepositoryIface
	itemRepo     repository.ItemRepositoryIface
	assetRepo    repository.AssetRepositoryIface
	auditService *AuditService
}

func NewDatasetService(
	gate *AccessGate,
	datasetRepo repository.DatasetRepositoryIface,
	itemRepo repository.ItemRepositoryIface,
	assetRepo repository.AssetRepositoryIface,
	auditService *AuditService,
) *DatasetService {
	return &DatasetService{
		gate:         gate,
		datasetRepo:  datasetRepo,
		itemRepo:     itemRepo,
		assetRepo:    assetRepo,
		auditService: auditService,
	}
}

// List returns the datasets the user may see: the whole org for admins and
// publishers, only explicitly shared datasets for viewers.
func (s *DatasetService) List(ctx context.Context, user *model.User) ([]*model.Dataset, error) {
	if user.Role.CanPublish() {
		return s.datasetRepo.ListByOrg(ctx, user.OrgID)
	}
	return s.datasetRepo.ListSharedWithUser(ctx, user.OrgID, user.ID)
}

// Get returns one dataset the user may see.
func (s *DatasetService) Get(ctx context.Context, user *model.User, datasetID uuid.UUID) (*model.Dataset, error) {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	s.auditService.Record(ctx, user.OrgID, user.ID, AuditDatasetView, map[string]interface{}{
		"dataset_id": dataset.ID,
	})
	return dataset, nil
}

// ItemListInput narrows and pages an item listing.
type ItemListInput struct {
	Type          string
	Query         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Cursor        string
	Limit         int
}

// ItemListOutput is one page plus the cursor for the next, empty when the
// listing is exhausted.
type ItemListOutput struct {
	Items      []*model.Item `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// ListItems pages a dataset's items newest first. A draft dataset has no
// items yet and reports an empty page.
func (s *DatasetService) ListItems(ctx context.Context, user *model.User, datasetID uuid.UUID, input ItemListInput) (*ItemListOutput, error) {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	if dataset.Status == model.DatasetDraft {
		return &ItemListOutput{Items: []*model.Item{}}, nil
	}

	filter := repository.ItemFilter{
		Type:          input.Type,
		Query:         input.Query,
		CreatedAfter:  input.CreatedAfter,
		CreatedBefore: input.CreatedBefore,
		Limit:         input.Limit,
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 25
	}
	if input.Cursor != "" {
		t, id, err := decodeCursor(input.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cursor", domain.ErrInvalidInput)
		}
		filter.CursorTime = &t
		filter.CursorID = &id
	}

	page, err := s.itemRepo.ListByDataset(ctx, user.OrgID, dataset.ID, filter)
	if err != nil {
		return nil, err
	}

	out := &ItemListOutput{Items: page.Items}
	if page.HasMore && len(page.Items) > 0 {
		last := page.Items[len(page.Items)-1]
		out.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	return out, nil
}

// TypeCounts returns item counts grouped by item type.
func (s *DatasetService) TypeCounts(ctx context.Context, user *model.User, datasetID uuid.UUID) (map[string]int64, error) {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	if dataset.Status == model.DatasetDraft {
		return map[string]int64{}, nil
	}
	return s.itemRepo.CountByType(ctx, user.OrgID, dataset.ID)
}

// ItemDetail is one item with its linked assets, raw annotations, and
// flattened timeline/caption views for the known annotation schemas.
type ItemDetail struct {
	Item        *model.Item              `json:"item"`
	Assets      []*model.Asset           `json:"assets"`
	Annotations []*model.Annotation      `json:"annotations"`
	Timeline    []map[string]interface{} `json:"timeline,omitempty"`
	Captions    []map[string]interface{} `json:"captions,omitempty"`
}

// GetItem resolves one item with its assets and annotations.
func (s *DatasetService) GetItem(ctx context.Context, user *model.User, itemID uuid.UUID) (*ItemDetail, error) {
	item, err := s.gate.Item(ctx, user, itemID)
	if err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListByItem(ctx, user.OrgID, item.ID)
	if err != nil {
		return nil, err
	}
	annotations, err := s.itemRepo.ListAnnotations(ctx, user.OrgID, item.ID)
	if err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditItemView, map[string]interface{}{
		"item_id":    item.ID,
		"dataset_id": item.DatasetID,
	})

	detail := &ItemDetail{Item: item, Assets: assets, Annotations: annotations}
	for _, ann := range annotations {
		switch ann.Schema {
		case "timeline_v1":
			detail.Timeline = append(detail.Timeline, collectEntries(ann.Data, "events")...)
		case "captions_v1":
			detail.Captions = append(detail.Captions, collectEntries(ann.Data, "segments")...)
		}
	}
	return detail, nil
}

// collectEntries pulls the named array of objects out of annotation data.
func collectEntries(data model.JSONMap, key string) []map[string]interface{} {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, e := range raw {
		if obj, ok := e.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

type itemCursor struct {
	T time.Time `json:"t"`
	I uuid.UUID `json:"i"`
}

func encodeCursor(t time.Time, id uuid.UUID) string {
	raw, _ := json.Marshal(itemCursor{T: t, I: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	var c itemCursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return time.Time{}, uuid.Nil, err
	}
	return c.T, c.I, nil
}
