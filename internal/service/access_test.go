package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/mocks"
	"github.com/rushilcs/data-viewer/internal/model"
)

type gateFixture struct {
	gate     *AccessGate
	datasets *mocks.MockDatasetRepositoryIface
	items    *mocks.MockItemRepositoryIface
	assets   *mocks.MockAssetRepositoryIface
	access   *mocks.MockAccessRepositoryIface
}

func newGateFixture(t *testing.T) *gateFixture {
	ctrl := gomock.NewController(t)
	f := &gateFixture{
		datasets: mocks.NewMockDatasetRepositoryIface(ctrl),
		items:    mocks.NewMockItemRepositoryIface(ctrl),
		assets:   mocks.NewMockAssetRepositoryIface(ctrl),
		access:   mocks.NewMockAccessRepositoryIface(ctrl),
	}
	f.gate = NewAccessGate(f.datasets, f.items, f.assets, f.access)
	return f
}

func testUser(role model.UserRole) *model.User {
	return &model.User{
		ID:       uuid.New(),
		OrgID:    uuid.New(),
		Email:    "user@example.com",
		Role:     role,
		IsActive: true,
	}
}

func TestGatePublisherSeesOrgDatasets(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RolePublisher)
	dataset := &model.Dataset{ID: uuid.New(), OrgID: user.OrgID}

	f.datasets.EXPECT().FindInOrg(gomock.Any(), dataset.ID, user.OrgID).Return(dataset, nil)

	got, err := f.gate.Dataset(context.Background(), user, dataset.ID)
	require.NoError(t, err)
	assert.Equal(t, dataset, got)
}

func TestGateViewerNeedsShare(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RoleViewer)
	dataset := &model.Dataset{ID: uuid.New(), OrgID: user.OrgID}

	f.datasets.EXPECT().FindInOrg(gomock.Any(), dataset.ID, user.OrgID).Return(dataset, nil).Times(2)

	f.access.EXPECT().HasAccess(gomock.Any(), dataset.ID, user.ID).Return(true, nil)
	got, err := f.gate.Dataset(context.Background(), user, dataset.ID)
	require.NoError(t, err)
	assert.Equal(t, dataset, got)

	f.access.EXPECT().HasAccess(gomock.Any(), dataset.ID, user.ID).Return(false, nil)
	_, err = f.gate.Dataset(context.Background(), user, dataset.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Every denial reads identically: a dataset in another org, an unshared
// dataset, and an id that does not exist all produce the same not-found.
func TestGateDenialsAreIndistinguishable(t *testing.T) {
	viewer := testUser(model.RoleViewer)
	ctx := context.Background()

	cases := []struct {
		name  string
		setup func(f *gateFixture, id uuid.UUID)
	}{
		{
			name: "dataset in another org",
			setup: func(f *gateFixture, id uuid.UUID) {
				// Org-scoped lookup never sees rows outside the viewer's org.
				f.datasets.EXPECT().FindInOrg(gomock.Any(), id, viewer.OrgID).Return(nil, domain.ErrNotFound)
			},
		},
		{
			name: "dataset exists but is not shared",
			setup: func(f *gateFixture, id uuid.UUID) {
				f.datasets.EXPECT().FindInOrg(gomock.Any(), id, viewer.OrgID).
					Return(&model.Dataset{ID: id, OrgID: viewer.OrgID}, nil)
				f.access.EXPECT().HasAccess(gomock.Any(), id, viewer.ID).Return(false, nil)
			},
		},
		{
			name: "dataset does not exist",
			setup: func(f *gateFixture, id uuid.UUID) {
				f.datasets.EXPECT().FindInOrg(gomock.Any(), id, viewer.OrgID).Return(nil, domain.ErrNotFound)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newGateFixture(t)
			id := uuid.New()
			tc.setup(f, id)

			dataset, err := f.gate.Dataset(ctx, viewer, id)
			assert.Nil(t, dataset)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.EqualError(t, err, domain.ErrNotFound.Error())
		})
	}
}

func TestGateItemResolvesThroughDataset(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RoleViewer)
	datasetID := uuid.New()
	item := &model.Item{ID: uuid.New(), OrgID: user.OrgID, DatasetID: datasetID}

	f.items.EXPECT().FindInOrg(gomock.Any(), item.ID, user.OrgID).Return(item, nil)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), datasetID, user.OrgID).
		Return(&model.Dataset{ID: datasetID, OrgID: user.OrgID}, nil)
	f.access.EXPECT().HasAccess(gomock.Any(), datasetID, user.ID).Return(true, nil)

	got, err := f.gate.Item(context.Background(), user, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestGateItemHiddenWhenDatasetUnshared(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RoleViewer)
	datasetID := uuid.New()
	item := &model.Item{ID: uuid.New(), OrgID: user.OrgID, DatasetID: datasetID}

	f.items.EXPECT().FindInOrg(gomock.Any(), item.ID, user.OrgID).Return(item, nil)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), datasetID, user.OrgID).
		Return(&model.Dataset{ID: datasetID, OrgID: user.OrgID}, nil)
	f.access.EXPECT().HasAccess(gomock.Any(), datasetID, user.ID).Return(false, nil)

	_, err := f.gate.Item(context.Background(), user, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGateAssetResolvesThroughDataset(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RoleAdmin)
	datasetID := uuid.New()
	asset := &model.Asset{ID: uuid.New(), OrgID: user.OrgID, DatasetID: datasetID}

	f.assets.EXPECT().FindInOrg(gomock.Any(), asset.ID, user.OrgID).Return(asset, nil)
	f.datasets.EXPECT().FindInOrg(gomock.Any(), datasetID, user.OrgID).
		Return(&model.Dataset{ID: datasetID, OrgID: user.OrgID}, nil)

	got, err := f.gate.Asset(context.Background(), user, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset, got)
}

func TestGateAssetNotFound(t *testing.T) {
	f := newGateFixture(t)
	user := testUser(model.RoleAdmin)
	id := uuid.New()

	f.assets.EXPECT().FindInOrg(gomock.Any(), id, user.OrgID).Return(nil, domain.ErrNotFound)

	_, err := f.gate.Asset(context.Background(), user, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
