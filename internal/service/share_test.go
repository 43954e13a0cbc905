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
	"github.com/rushilcs/data-viewer/internal/repository"
)

type shareFixture struct {
	svc      *ShareService
	datasets *mocks.MockDatasetRepositoryIface
	access   *mocks.MockAccessRepositoryIface
	users    *mocks.MockUserRepositoryIface
	audit    *mocks.MockAuditRepositoryIface
}

func newShareFixture(t *testing.T) *shareFixture {
	ctrl := gomock.NewController(t)
	f := &shareFixture{
		datasets: mocks.NewMockDatasetRepositoryIface(ctrl),
		access:   mocks.NewMockAccessRepositoryIface(ctrl),
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		audit:    mocks.NewMockAuditRepositoryIface(ctrl),
	}
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gate := NewAccessGate(
		f.datasets,
		mocks.NewMockItemRepositoryIface(ctrl),
		mocks.NewMockAssetRepositoryIface(ctrl),
		f.access,
	)
	f.svc = NewShareService(gate, f.access, f.users, NewAuditService(f.audit))
	return f
}

func (f *shareFixture) expectDataset(user *model.User, datasetID uuid.UUID) {
	f.datasets.EXPECT().FindInOrg(gomock.Any(), datasetID, user.OrgID).
		Return(&model.Dataset{ID: datasetID, OrgID: user.OrgID}, nil)
}

func TestAddShareGrantsKnownUser(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)
	datasetID := uuid.New()
	target := &model.User{ID: uuid.New(), OrgID: publisher.OrgID, Email: "viewer@example.com"}

	f.expectDataset(publisher, datasetID)
	f.users.EXPECT().FindActiveByEmailInOrg(gomock.Any(), "viewer@example.com", publisher.OrgID).
		Return(target, nil)
	f.access.EXPECT().Grant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *model.DatasetAccess) (bool, error) {
			assert.Equal(t, publisher.OrgID, a.OrgID)
			assert.Equal(t, datasetID, a.DatasetID)
			assert.Equal(t, target.ID, a.UserID)
			assert.Equal(t, publisher.ID, a.CreatedByUserID)
			return true, nil
		})

	out, err := f.svc.Add(context.Background(), publisher, datasetID, AddShareInput{Email: "Viewer@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "viewer@example.com", out.Email)
	assert.False(t, out.Pending)
	assert.True(t, out.Created)
}

func TestAddShareIsIdempotent(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)
	datasetID := uuid.New()
	target := &model.User{ID: uuid.New(), OrgID: publisher.OrgID, Email: "viewer@example.com"}

	f.expectDataset(publisher, datasetID)
	f.users.EXPECT().FindActiveByEmailInOrg(gomock.Any(), "viewer@example.com", publisher.OrgID).
		Return(target, nil)
	f.access.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(false, nil)

	out, err := f.svc.Add(context.Background(), publisher, datasetID, AddShareInput{Email: "viewer@example.com"})
	require.NoError(t, err)
	assert.False(t, out.Created)
}

func TestAddSharePendingForUnknownEmail(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)
	datasetID := uuid.New()

	f.expectDataset(publisher, datasetID)
	f.users.EXPECT().FindActiveByEmailInOrg(gomock.Any(), "future@example.com", publisher.OrgID).
		Return(nil, domain.ErrUserNotFound)
	f.access.EXPECT().GrantPending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *model.PendingDatasetShare) (bool, error) {
			assert.Equal(t, "future@example.com", p.Email)
			assert.Equal(t, datasetID, p.DatasetID)
			return true, nil
		})

	out, err := f.svc.Add(context.Background(), publisher, datasetID, AddShareInput{Email: "future@example.com"})
	require.NoError(t, err)
	assert.True(t, out.Pending)
	assert.True(t, out.Created)
}

func TestAddShareRejectsViewer(t *testing.T) {
	f := newShareFixture(t)
	viewer := testUser(model.RoleViewer)
	datasetID := uuid.New()

	f.expectDataset(viewer, datasetID)
	f.access.EXPECT().HasAccess(gomock.Any(), datasetID, viewer.ID).Return(true, nil)

	_, err := f.svc.Add(context.Background(), viewer, datasetID, AddShareInput{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// A viewer without a grant cannot tell a real dataset from a missing one,
// even through the share endpoints.
func TestAddShareHidesDatasetFromUnsharedViewer(t *testing.T) {
	f := newShareFixture(t)
	viewer := testUser(model.RoleViewer)
	datasetID := uuid.New()

	f.expectDataset(viewer, datasetID)
	f.access.EXPECT().HasAccess(gomock.Any(), datasetID, viewer.ID).Return(false, nil)

	_, err := f.svc.Add(context.Background(), viewer, datasetID, AddShareInput{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddShareRejectsBadEmail(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)

	_, err := f.svc.Add(context.Background(), publisher, uuid.New(), AddShareInput{Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListShares(t *testing.T) {
	f := newShareFixture(t)
	admin := testUser(model.RoleAdmin)
	datasetID := uuid.New()
	userID := uuid.New()

	f.expectDataset(admin, datasetID)
	f.access.EXPECT().ListShares(gomock.Any(), admin.OrgID, datasetID).Return([]repository.ShareEntry{
		{UserID: &userID, Email: "viewer@example.com", AccessRole: "viewer"},
		{Email: "future@example.com", Pending: true},
	}, nil)

	entries, err := f.svc.List(context.Background(), admin, datasetID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Pending)
	assert.True(t, entries[1].Pending)
}

func TestRemoveShare(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)
	datasetID := uuid.New()
	targetID := uuid.New()

	f.expectDataset(publisher, datasetID)
	f.access.EXPECT().Revoke(gomock.Any(), publisher.OrgID, datasetID, targetID).Return(nil)

	assert.NoError(t, f.svc.Remove(context.Background(), publisher, datasetID, targetID))
}

func TestRemoveShareMissingGrant(t *testing.T) {
	f := newShareFixture(t)
	publisher := testUser(model.RolePublisher)
	datasetID := uuid.New()
	targetID := uuid.New()

	f.expectDataset(publisher, datasetID)
	f.access.EXPECT().Revoke(gomock.Any(), publisher.OrgID, datasetID, targetID).Return(domain.ErrNotFound)

	err := f.svc.Remove(context.Background(), publisher, datasetID, targetID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
