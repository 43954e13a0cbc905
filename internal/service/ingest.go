// internal/service/ingest.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/registry"
	"github.com/rushilcs/data-viewer/internal/repository"
	"github.com/rushilcs/data-viewer/internal/storage"
)

// ScanFunc inspects uploaded bytes before they are committed to storage.
// A non-nil error rejects the upload as unprocessable content.
type ScanFunc func(ctx context.Context, contentType string, data []byte) error

// ManifestError carries the complete list of structured validation errors
// from a failed validate phase. No database writes happened when it is
// returned.
type ManifestError struct {
	Errors []registry.ValidationError `json:"errors"`
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest validation failed with %d error(s)", len(e.Errors))
}

// Manifest is the publish/append request body: an ordered batch of items.
type Manifest struct {
	Items []ManifestItem `json:"items"`
}

type ManifestItem struct {
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Summary     string                 `json:"summary"`
	Payload     map[string]interface{} `json:"payload"`
	Annotations []ManifestAnnotation   `json:"annotations"`
}

type ManifestAnnotation struct {
	Schema string                 `json:"schema"`
	Data   map[string]interface{} `json:"data"`
}

// AssetSpec is one requested upload slot.
type AssetSpec struct {
	Filename    string `json:"filename"`
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	ByteSize    int64  `json:"byte_size"`
}

// AssetSlot is the allocation result, positionally matched to its AssetSpec.
type AssetSlot struct {
	AssetID    uuid.UUID `json:"asset_id"`
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
}

// IngestService drives the draft-create, allocate, upload, publish/append
// pipeline. Publish and append use a strict two-phase protocol: validate
// everything with zero mutation, then commit in one transaction guarded by a
// conditional status update so a concurrent double publish loses cleanly.
type IngestService struct {
	gate         *AccessGate
	datasetRepo  repository.DatasetRepositoryIface
	assetRepo    repository.AssetRepositoryIface
	store        storage.Backend
	capability   *auth.CapabilityService
	registry     *registry.Registry
	auditService *AuditService
	rateLimiter  *RateLimiter
	scan         ScanFunc
	config       *config.Config
}

func NewIngestService(
	gate *AccessGate,
	datasetRepo repository.DatasetRepositoryIface,
	assetRepo repository.AssetRepositoryIface,
	store storage.Backend,
	capability *auth.CapabilityService,
	reg *registry.Registry,
	auditService *AuditService,
	rateLimiter *RateLimiter,
	scan ScanFunc,
	config *config.Config,
) *IngestService {
	return &IngestService{
		gate:         gate,
		datasetRepo:  datasetRepo,
		assetRepo:    assetRepo,
		store:        store,
		capability:   capability,
		registry:     reg,
		auditService: auditService,
		rateLimiter:  rateLimiter,
		scan:         scan,
		config:       config,
	}
}

type CreateDraftInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CreateDraft creates an empty draft dataset owned by the caller's org.
func (s *IngestService) CreateDraft(ctx context.Context, user *model.User, input CreateDraftInput) (*model.Dataset, error) {
	if !user.Role.CanPublish() {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	dataset := &model.Dataset{
		OrgID:           user.OrgID,
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		Status:          model.DatasetDraft,
		CreatedByUserID: user.ID,
		Tags:            input.Tags,
	}
	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditDatasetCreate, map[string]interface{}{
		"dataset_id": dataset.ID,
		"name":       dataset.Name,
	})
	return dataset, nil
}

// AllocateAssets validates each requested file spec, inserts unlinked asset
// rows, and mints an upload capability token per slot. Slots come back in
// request order. Nothing is allocated when any spec is invalid.
func (s *IngestService) AllocateAssets(ctx context.Context, user *model.User, datasetID uuid.UUID, specs []AssetSpec) ([]AssetSlot, error) {
	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanPublish() {
		return nil, domain.ErrUnauthorized
	}
	if !dataset.Writable() {
		return nil, domain.ErrDatasetNotWritable
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no file specs", domain.ErrInvalidInput)
	}

	var errs []registry.ValidationError
	for i, spec := range specs {
		path := fmt.Sprintf("files[%d]", i)
		if !model.ValidAssetKind(spec.Kind) {
			errs = append(errs, registry.ValidationError{
				Path: path + ".kind", ErrorType: registry.KindInvalid,
				Message: fmt.Sprintf("unknown asset kind %q", spec.Kind),
			})
			continue
		}
		if !s.config.ContentTypeAllowed(spec.ContentType) {
			errs = append(errs, registry.ValidationError{
				Path: path + ".content_type", ErrorType: registry.KindInvalid,
				Message: fmt.Sprintf("content type %q is not allowed", spec.ContentType),
			})
		}
		if max := s.config.MaxBytesForKind(spec.Kind); spec.ByteSize <= 0 || spec.ByteSize > max {
			errs = append(errs, registry.ValidationError{
				Path: path + ".byte_size", ErrorType: registry.KindInvalid,
				Message: fmt.Sprintf("byte size must be in 1..%d", max),
			})
		}
	}
	if len(errs) > 0 {
		return nil, &ManifestError{Errors: errs}
	}

	assets := make([]*model.Asset, len(specs))
	for i, spec := range specs {
		suffix, err := randomHex(8)
		if err != nil {
			return nil, fmt.Errorf("generating storage key suffix: %w", err)
		}
		key := fmt.Sprintf("%s/%s/%s_%s", user.OrgID, dataset.ID, suffix, sanitizeFilename(spec.Filename))
		assets[i] = &model.Asset{
			ID:          uuid.New(),
			OrgID:       user.OrgID,
			DatasetID:   dataset.ID,
			Kind:        model.AssetKind(spec.Kind),
			StorageKey:  key,
			ContentType: spec.ContentType,
			ByteSize:    spec.ByteSize,
		}
	}
	if err := s.assetRepo.CreateBatch(ctx, assets); err != nil {
		return nil, err
	}

	slots := make([]AssetSlot, len(assets))
	for i, asset := range assets {
		token := s.capability.MintUploadToken(asset.ID, asset.OrgID, asset.DatasetID, asset.ByteSize)
		slots[i] = AssetSlot{
			AssetID:    asset.ID,
			UploadURL:  fmt.Sprintf("%s/api/assets/%s/upload?token=%s", s.config.Server.BaseURL, asset.ID, token),
			StorageKey: asset.StorageKey,
		}
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditAssetAllocate, map[string]interface{}{
		"dataset_id": dataset.ID,
		"count":      len(assets),
	})
	return slots, nil
}

// AcceptUpload commits bytes for an allocated asset. The caller authorizes
// with either a publisher session in the asset's org or a valid upload token;
// exactly one must succeed. Bytes are written only after every precondition
// passes, so a rejected upload leaves storage untouched.
func (s *IngestService) AcceptUpload(ctx context.Context, user *model.User, token string, assetID uuid.UUID, data []byte) error {
	// Session callers resolve the asset org-scoped first, so an asset owned
	// by another org is indistinguishable from a missing one.
	var asset *model.Asset
	var err error
	if user != nil {
		asset, err = s.assetRepo.FindInOrg(ctx, assetID, user.OrgID)
	} else {
		asset, err = s.assetRepo.FindByID(ctx, assetID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("resolving asset: %w", err)
	}

	sessionOK := user != nil && user.Role.CanPublish()
	if !sessionOK {
		if !s.capability.VerifyUploadToken(token, asset.ID, asset.OrgID, asset.DatasetID, asset.ByteSize) {
			return domain.ErrInvalidToken
		}
	}

	dataset, err := s.datasetRepo.FindInOrg(ctx, asset.DatasetID, asset.OrgID)
	if err != nil {
		return fmt.Errorf("resolving dataset: %w", err)
	}
	if !dataset.Writable() {
		return domain.ErrDatasetNotWritable
	}
	if asset.ItemID != nil {
		return domain.ErrAssetLinked
	}
	if int64(len(data)) != asset.ByteSize {
		return fmt.Errorf("%w: declared %d bytes, received %d", domain.ErrSizeMismatch, asset.ByteSize, len(data))
	}
	if s.config.Upload.EnableScan && s.scan != nil {
		if err := s.scan(ctx, asset.ContentType, data); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrScanRejected, err)
		}
	}

	if err := s.store.Put(ctx, asset.StorageKey, asset.ContentType, data); err != nil {
		return fmt.Errorf("writing object: %w", err)
	}

	// Token-only uploads have no acting user; the row records a nil actor.
	uploaderID := uuid.Nil
	if user != nil {
		uploaderID = user.ID
	}
	s.auditService.Record(ctx, asset.OrgID, uploaderID, AuditAssetUpload, map[string]interface{}{
		"asset_id":   asset.ID,
		"dataset_id": asset.DatasetID,
		"byte_size":  asset.ByteSize,
	})
	return nil
}

// Publish validates a manifest against a draft dataset and atomically
// promotes it to published.
func (s *IngestService) Publish(ctx context.Context, user *model.User, datasetID uuid.UUID, manifest Manifest) error {
	return s.commitManifest(ctx, user, datasetID, manifest, true)
}

// Append validates a manifest against a published dataset and atomically
// adds its items. Existing items are never modified.
func (s *IngestService) Append(ctx context.Context, user *model.User, datasetID uuid.UUID, manifest Manifest) error {
	return s.commitManifest(ctx, user, datasetID, manifest, false)
}

func (s *IngestService) commitManifest(ctx context.Context, user *model.User, datasetID uuid.UUID, manifest Manifest, publish bool) error {
	if !s.config.IngestEnabled {
		return domain.ErrIngestDisabled
	}
	if !s.rateLimiter.Allow("ingest:"+user.ID.String(), s.config.RateLimit.IngestPerMinute) {
		return domain.ErrRateLimited
	}

	dataset, err := s.gate.Dataset(ctx, user, datasetID)
	if err != nil {
		return err
	}
	if !user.Role.CanPublish() {
		return domain.ErrUnauthorized
	}
	if publish && dataset.Status != model.DatasetDraft {
		return domain.ErrDatasetNotDraft
	}
	if !publish && dataset.Status != model.DatasetPublished {
		return domain.ErrDatasetNotPublished
	}
	if len(manifest.Items) == 0 {
		return domain.ErrEmptyManifest
	}

	items, err := s.validateManifest(ctx, dataset, manifest)
	if err != nil {
		return err
	}

	if publish {
		err = s.datasetRepo.CommitPublish(ctx, dataset.ID, dataset.OrgID, time.Now().UTC(), items)
	} else {
		err = s.datasetRepo.CommitAppend(ctx, dataset.ID, dataset.OrgID, items)
	}
	if err != nil {
		return err
	}

	event := AuditDatasetPublish
	if !publish {
		event = AuditDatasetAppend
	}
	s.auditService.Record(ctx, user.OrgID, user.ID, event, map[string]interface{}{
		"dataset_id": dataset.ID,
		"item_count": len(items),
	})
	return nil
}

// validateManifest is the no-mutation phase: every item, annotation, asset
// reference, and stored object is checked and every diagnostic collected
// before anything is written.
func (s *IngestService) validateManifest(ctx context.Context, dataset *model.Dataset, manifest Manifest) ([]repository.IngestItem, error) {
	var errs registry.ErrorList
	items := make([]repository.IngestItem, 0, len(manifest.Items))
	referenced := make(map[uuid.UUID]string)

	for i, entry := range manifest.Items {
		itemPath := fmt.Sprintf("items[%d]", i)
		payloadPath := itemPath + ".payload"

		if !s.registry.Supports(entry.Type) {
			errs.Merge(s.registry.Validate(entry.Type, itemPath, entry.Payload))
			continue
		}
		errs.Merge(s.registry.Validate(entry.Type, payloadPath, entry.Payload))

		annotations := make([]*model.Annotation, 0, len(entry.Annotations))
		for j, ann := range entry.Annotations {
			annPath := fmt.Sprintf("%s.annotations[%d]", itemPath, j)
			errs.Merge(registry.ValidateAnnotation(ann.Schema, annPath, ann.Data))
			annotations = append(annotations, &model.Annotation{
				OrgID:     dataset.OrgID,
				DatasetID: dataset.ID,
				Schema:    ann.Schema,
				Data:      model.JSONMap(ann.Data),
			})
		}

		assetIDs, err := s.registry.ExtractAssetIDs(entry.Type, entry.Payload)
		if err != nil {
			return nil, fmt.Errorf("extracting asset ids: %w", err)
		}
		for _, id := range assetIDs {
			if prev, dup := referenced[id]; dup {
				errs.Add(payloadPath, registry.KindInvalid,
					"asset %s already referenced by %s", id, prev)
				continue
			}
			referenced[id] = itemPath
		}

		items = append(items, repository.IngestItem{
			Item: &model.Item{
				OrgID:     dataset.OrgID,
				DatasetID: dataset.ID,
				Type:      entry.Type,
				Title:     entry.Title,
				Summary:   entry.Summary,
				Payload:   model.JSONMap(entry.Payload),
			},
			Annotations: annotations,
			AssetIDs:    assetIDs,
		})
	}

	if err := s.checkReferencedAssets(ctx, dataset, referenced, &errs); err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		return nil, &ManifestError{Errors: errs}
	}
	return items, nil
}

// checkReferencedAssets confirms each referenced asset was allocated in this
// dataset, is still unlinked, and has a stored object whose size and content
// type match the allocation row. Missing or mismatched objects accumulate as
// validation errors; an unexpected storage or database failure aborts the
// whole operation instead.
func (s *IngestService) checkReferencedAssets(ctx context.Context, dataset *model.Dataset, referenced map[uuid.UUID]string, errs *registry.ErrorList) error {
	if len(referenced) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(referenced))
	for id := range referenced {
		ids = append(ids, id)
	}

	assets, err := s.assetRepo.ListByIDs(ctx, dataset.OrgID, ids)
	if err != nil {
		return fmt.Errorf("resolving referenced assets: %w", err)
	}
	byID := make(map[uuid.UUID]*model.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	for id, itemPath := range referenced {
		path := itemPath + ".payload"
		asset, ok := byID[id]
		if !ok || asset.DatasetID != dataset.ID {
			errs.Add(path, registry.KindInvalid, "asset %s was not uploaded to this dataset", id)
			continue
		}
		if asset.ItemID != nil {
			errs.Add(path, registry.KindInvalid, "asset %s is already linked to an item", id)
			continue
		}

		info, err := s.store.Head(ctx, asset.StorageKey)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				errs.Add(path, registry.KindInvalid, "asset %s has no uploaded bytes", id)
				continue
			}
			return fmt.Errorf("checking asset %s: %w", id, err)
		}
		if info.ByteSize != asset.ByteSize {
			errs.Add(path, registry.KindInvalid,
				"asset %s stored size %d does not match declared size %d", id, info.ByteSize, asset.ByteSize)
		}
		if info.ContentType != "" && info.ContentType != asset.ContentType {
			errs.Add(path, registry.KindInvalid,
				"asset %s stored content type %q does not match declared %q", id, info.ContentType, asset.ContentType)
		}
	}
	return nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// sanitizeFilename strips path separators and anything outside a safe
// character set, and bounds the result's length.
func sanitizeFilename(name string) string {
	const maxLen = 100
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		if b.Len() >= maxLen {
			break
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
