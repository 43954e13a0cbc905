// internal/service/asset.go
package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
	"github.com/rushilcs/data-viewer/internal/storage"
)

// SignedURL is a short-lived download link for one asset.
type SignedURL struct {
	AssetID   uuid.UUID `json:"asset_id"`
	URL       string    `json:"url"`
	ExpiresIn int64     `json:"expires_in"`
}

// AssetService mints signed download URLs and serves the byte stream behind
// them. Minting goes through the access gate; the stream itself is
// authorized purely by the download token so media tags need no session.
type AssetService struct {
	gate         *AccessGate
	assetRepo    repository.AssetRepositoryIface
	store        storage.Backend
	capability   *auth.CapabilityService
	cacheService *CacheService
	auditService *AuditService
	config       *config.Config
}

func NewAssetService(
	gate *AccessGate,
	assetRepo repository.AssetRepositoryIface,
	store storage.Backend,
	capability *auth.CapabilityService,
	cacheService *CacheService,
	auditService *AuditService,
	config *config.Config,
) *AssetService {
	return &AssetService{
		gate:         gate,
		assetRepo:    assetRepo,
		store:        store,
		capability:   capability,
		cacheService: cacheService,
		auditService: auditService,
		config:       config,
	}
}

// SignURL returns a download URL for an asset the user may see. Minted URLs
// are cached for a window comfortably shorter than the token TTL so a cached
// URL is never handed out with almost no life left.
func (s *AssetService) SignURL(ctx context.Context, user *model.User, assetID uuid.UUID) (*SignedURL, error) {
	// The gate runs before the cache is consulted, so a revoked share takes
	// effect immediately rather than after the cached URL ages out.
	asset, err := s.gate.Asset(ctx, user, assetID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("signed_url:%s:%s", user.ID, assetID)
	if s.cacheService != nil {
		var cached SignedURL
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditAssetSignURL, map[string]interface{}{
		"asset_id": asset.ID,
	})

	token := s.capability.MintDownloadToken(asset.ID, asset.OrgID)
	signed := &SignedURL{
		AssetID:   asset.ID,
		URL:       fmt.Sprintf("%s/api/assets/%s/stream?token=%s", s.config.Server.BaseURL, asset.ID, token),
		ExpiresIn: int64(s.capability.DownloadTTL().Seconds()),
	}

	if s.cacheService != nil {
		// best effort; a cache miss just re-mints
		_ = s.cacheService.Set(ctx, cacheKey, signed)
	}
	return signed, nil
}

// SignURLs mints download URLs for a batch of assets, keyed by asset id.
func (s *AssetService) SignURLs(ctx context.Context, user *model.User, assetIDs []uuid.UUID) (map[uuid.UUID]*SignedURL, error) {
	out := make(map[uuid.UUID]*SignedURL, len(assetIDs))
	for _, id := range assetIDs {
		signed, err := s.SignURL(ctx, user, id)
		if err != nil {
			return nil, err
		}
		out[id] = signed
	}
	return out, nil
}

// Stream opens the byte stream for an asset, authorized only by the download
// token. Every failure is the same opaque not-found.
func (s *AssetService) Stream(ctx context.Context, assetID uuid.UUID, token string) (io.ReadCloser, *model.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, nil, domain.ErrNotFound
	}
	if !s.capability.VerifyDownloadToken(token, asset.ID, asset.OrgID) {
		return nil, nil, domain.ErrNotFound
	}
	rc, err := s.store.Open(ctx, asset.StorageKey)
	if err != nil {
		return nil, nil, domain.ErrNotFound
	}
	return rc, asset, nil
}
