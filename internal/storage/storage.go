// internal/storage/storage.go
package storage

import (
	"context"
	"io"

	"github.com/rushilcs/data-viewer/internal/domain"
)

// ObjectInfo is the metadata returned by Head. ContentType is empty when the
// backend does not record one (local disk).
type ObjectInfo struct {
	ByteSize    int64
	ContentType string
}

// Backend is a blob store: put/get/head by storage key, no business logic.
// Implementations must make Put all-or-nothing: a failed write never leaves a
// partial object visible under key.
type Backend interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Head(ctx context.Context, key string) (ObjectInfo, error)
}

// ErrObjectNotFound is returned by Open and Head for a missing key.
var ErrObjectNotFound = domain.ErrObjectNotFound
