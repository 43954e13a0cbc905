// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNoOrganization       = errors.New("no organization configured")

	// Token-related errors
	ErrInvalidToken = errors.New("invalid or expired token")

	// Dataset lifecycle errors
	ErrDatasetNotDraft     = errors.New("dataset is not in draft state")
	ErrDatasetNotPublished = errors.New("dataset is not published")
	ErrDatasetNotWritable  = errors.New("dataset must be draft or published")
	ErrAssetLinked         = errors.New("asset already linked to an item")
	ErrEmptyManifest       = errors.New("manifest must contain at least one item")
	ErrIngestDisabled      = errors.New("ingestion is temporarily disabled")
	ErrSizeMismatch        = errors.New("uploaded byte count does not match declared size")
	ErrScanRejected        = errors.New("file did not pass content scan")
	ErrRateLimited         = errors.New("too many requests")

	// Storage-related errors
	ErrObjectNotFound = errors.New("object not found in storage")
)
