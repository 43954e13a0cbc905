// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./dataset.go -destination=../mocks/mock_dataset_repository.go -package=mocks DatasetRepositoryIface
//go:generate mockgen -source=./asset.go -destination=../mocks/mock_asset_repository.go -package=mocks AssetRepositoryIface
//go:generate mockgen -source=./item.go -destination=../mocks/mock_item_repository.go -package=mocks ItemRepositoryIface
//go:generate mockgen -source=./access.go -destination=../mocks/mock_access_repository.go -package=mocks AccessRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./audit_event.go -destination=../mocks/mock_audit_repository.go -package=mocks AuditRepositoryIface
