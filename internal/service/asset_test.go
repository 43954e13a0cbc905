package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/mocks"
	"github.com/rushilcs/data-viewer/internal/model"
)

type assetFixture struct {
	svc        *AssetService
	datasets   *mocks.MockDatasetRepositoryIface
	assets     *mocks.MockAssetRepositoryIface
	store      *mocks.MockBackend
	capability *auth.CapabilityService
}

func newAssetFixture(t *testing.T, cacheTTL time.Duration) *assetFixture {
	ctrl := gomock.NewController(t)
	f := &assetFixture{
		datasets:   mocks.NewMockDatasetRepositoryIface(ctrl),
		assets:     mocks.NewMockAssetRepositoryIface(ctrl),
		store:      mocks.NewMockBackend(ctrl),
		capability: auth.NewCapabilityService("test-secret", 5*time.Minute, time.Hour),
	}
	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:8080"

	var cacheService *CacheService
	if cacheTTL > 0 {
		cacheService = NewCacheService(CacheConfig{TTL: cacheTTL, CleanupFreq: time.Minute})
		t.Cleanup(cacheService.Close)
	}

	auditRepo := mocks.NewMockAuditRepositoryIface(ctrl)
	auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	gate := NewAccessGate(f.datasets, mocks.NewMockItemRepositoryIface(ctrl), f.assets,
		mocks.NewMockAccessRepositoryIface(ctrl))
	f.svc = NewAssetService(gate, f.assets, f.store, f.capability, cacheService, NewAuditService(auditRepo), cfg)
	return f
}

func storedAsset(orgID uuid.UUID) *model.Asset {
	return &model.Asset{
		ID:          uuid.New(),
		OrgID:       orgID,
		DatasetID:   uuid.New(),
		Kind:        model.AssetImage,
		StorageKey:  "org/ds/key.png",
		ContentType: "image/png",
		ByteSize:    64,
	}
}

func TestSignURL(t *testing.T) {
	f := newAssetFixture(t, 0)
	user := testUser(model.RolePublisher)
	asset := storedAsset(user.OrgID)

	f.assets.EXPECT().FindInOrg(gomock.Any(), asset.ID, user.OrgID).Return(asset, nil)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), asset.DatasetID, user.OrgID).
		Return(&model.Dataset{ID: asset.DatasetID, OrgID: user.OrgID, Status: model.DatasetPublished}, nil)

	signed, err := f.svc.SignURL(context.Background(), user, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.ID, signed.AssetID)
	assert.Equal(t, int64(3600), signed.ExpiresIn)

	// The URL embeds a token that actually authorizes the stream.
	token := signed.URL[strings.Index(signed.URL, "token=")+len("token="):]
	assert.True(t, f.capability.VerifyDownloadToken(token, asset.ID, asset.OrgID))
}

func TestSignURLUsesCache(t *testing.T) {
	f := newAssetFixture(t, time.Minute)
	user := testUser(model.RolePublisher)
	asset := storedAsset(user.OrgID)

	// The gate runs on every call; the second mint is served from cache.
	f.assets.EXPECT().FindInOrg(gomock.Any(), asset.ID, user.OrgID).Return(asset, nil).Times(2)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), asset.DatasetID, user.OrgID).
		Return(&model.Dataset{ID: asset.DatasetID, OrgID: user.OrgID, Status: model.DatasetPublished}, nil).Times(2)

	first, err := f.svc.SignURL(context.Background(), user, asset.ID)
	require.NoError(t, err)
	second, err := f.svc.SignURL(context.Background(), user, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, first.URL, second.URL)
}

func TestSignURLCacheDoesNotOutliveAccess(t *testing.T) {
	f := newAssetFixture(t, time.Minute)
	user := testUser(model.RolePublisher)
	asset := storedAsset(user.OrgID)

	gomock.InOrder(
		f.assets.EXPECT().FindInOrg(gomock.Any(), asset.ID, user.OrgID).Return(asset, nil),
		f.assets.EXPECT().FindInOrg(gomock.Any(), asset.ID, user.OrgID).Return(nil, domain.ErrNotFound),
	)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), asset.DatasetID, user.OrgID).
		Return(&model.Dataset{ID: asset.DatasetID, OrgID: user.OrgID, Status: model.DatasetPublished}, nil)

	_, err := f.svc.SignURL(context.Background(), user, asset.ID)
	require.NoError(t, err)

	// Access withdrawn: the cached URL must not be handed out anyway.
	_, err = f.svc.SignURL(context.Background(), user, asset.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignURLDeniedAsset(t *testing.T) {
	f := newAssetFixture(t, 0)
	user := testUser(model.RoleViewer)
	id := uuid.New()

	f.assets.EXPECT().FindInOrg(gomock.Any(), id, user.OrgID).Return(nil, domain.ErrNotFound)

	_, err := f.svc.SignURL(context.Background(), user, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStream(t *testing.T) {
	f := newAssetFixture(t, 0)
	asset := storedAsset(uuid.New())
	token := f.capability.MintDownloadToken(asset.ID, asset.OrgID)

	f.assets.EXPECT().FindByID(gomock.Any(), asset.ID).Return(asset, nil)
	f.store.EXPECT().Open(gomock.Any(), asset.StorageKey).
		Return(io.NopCloser(strings.NewReader("png bytes")), nil)

	rc, got, err := f.svc.Stream(context.Background(), asset.ID, token)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, asset, got)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

// Bad token, missing asset, and missing bytes are indistinguishable to an
// unauthenticated caller.
func TestStreamFailuresAreOpaque(t *testing.T) {
	t.Run("unknown asset", func(t *testing.T) {
		f := newAssetFixture(t, 0)
		id := uuid.New()
		f.assets.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrNotFound)

		_, _, err := f.svc.Stream(context.Background(), id, "whatever")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("token for a different asset", func(t *testing.T) {
		f := newAssetFixture(t, 0)
		asset := storedAsset(uuid.New())
		token := f.capability.MintDownloadToken(uuid.New(), asset.OrgID)
		f.assets.EXPECT().FindByID(gomock.Any(), asset.ID).Return(asset, nil)

		_, _, err := f.svc.Stream(context.Background(), asset.ID, token)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("object missing from storage", func(t *testing.T) {
		f := newAssetFixture(t, 0)
		asset := storedAsset(uuid.New())
		token := f.capability.MintDownloadToken(asset.ID, asset.OrgID)
		f.assets.EXPECT().FindByID(gomock.Any(), asset.ID).Return(asset, nil)
		f.store.EXPECT().Open(gomock.Any(), asset.StorageKey).
			Return(nil, domain.ErrObjectNotFound)

		_, _, err := f.svc.Stream(context.Background(), asset.ID, token)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
