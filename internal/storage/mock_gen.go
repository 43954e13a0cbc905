// internal/storage/mock_gen.go
package storage

//go:generate mockgen -source=./storage.go -destination=../mocks/mock_storage.go -package=mocks Backend
