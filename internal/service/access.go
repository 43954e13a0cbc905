// internal/service/access.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

// AccessGate is the single source of truth for "does this principal see this
// resource". Every failure mode — wrong org, right org but unshared,
// nonexistent id — collapses to the identical domain.ErrNotFound so callers
// cannot probe for resource existence across tenant or ACL boundaries.
//
// Admins and publishers see every dataset in their org; viewers additionally
// need a DatasetAccess row. Items and assets are always resolved through
// their owning dataset; they carry no ACL of their own.
type AccessGate struct {
	datasets repository.DatasetRepositoryIface
	items    repository.ItemRepositoryIface
	assets   repository.AssetRepositoryIface
	access   repository.AccessRepositoryIface
}

func NewAccessGate(
	datasets repository.DatasetRepositoryIface,
	items repository.ItemRepositoryIface,
	assets repository.AssetRepositoryIface,
	access repository.AccessRepositoryIface,
) *AccessGate {
	return &AccessGate{
		datasets: datasets,
		items:    items,
		assets:   assets,
		access:   access,
	}
}

// Dataset resolves a dataset the user is entitled to see, or
// domain.ErrNotFound.
func (g *AccessGate) Dataset(ctx context.Context, user *model.User, datasetID uuid.UUID) (*model.Dataset, error) {
	dataset, err := g.datasets.FindInOrg(ctx, datasetID, user.OrgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolving dataset: %w", err)
	}

	if user.Role.CanPublish() {
		return dataset, nil
	}

	shared, err := g.access.HasAccess(ctx, datasetID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("checking dataset access: %w", err)
	}
	if !shared {
		return nil, domain.ErrNotFound
	}
	return dataset, nil
}

// Item resolves an item through its owning dataset's authorization.
func (g *AccessGate) Item(ctx context.Context, user *model.User, itemID uuid.UUID) (*model.Item, error) {
	item, err := g.items.FindInOrg(ctx, itemID, user.OrgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolving item: %w", err)
	}
	if _, err := g.Dataset(ctx, user, item.DatasetID); err != nil {
		return nil, err
	}
	return item, nil
}

// Asset resolves an asset through its owning dataset's authorization.
func (g *AccessGate) Asset(ctx context.Context, user *model.User, assetID uuid.UUID) (*model.Asset, error) {
	asset, err := g.assets.FindInOrg(ctx, assetID, user.OrgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolving asset: %w", err)
	}
	if _, err := g.Dataset(ctx, user, asset.DatasetID); err != nil {
		return nil, err
	}
	return asset, nil
}
