// internal/registry/registry.go

// Package registry validates item payloads and extracts the asset ids they
// reference. Each item type is a closed, strictly-validated shape; adding a
// type means adding one variant and one registry entry, never touching
// dispatch logic.
package registry

import (
	"sort"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/domain"
)

// itemType is the capability set every variant must implement. Callers
// assume nothing else about a variant.
type itemType interface {
	// validate appends structured diagnostics for payload under path.
	validate(path string, payload map[string]interface{}) ErrorList
	// extractAssetIDs returns the asset ids payload references. It is only
	// meaningful for a payload that validated cleanly; malformed references
	// are skipped rather than reported twice.
	extractAssetIDs(payload map[string]interface{}) []uuid.UUID
}

type Registry struct {
	types map[string]itemType
}

// New returns a registry with the shipped item types registered.
func New() *Registry {
	return &Registry{
		types: map[string]itemType{
			"image_pair_compare":   imagePairCompare{},
			"image_ranked_gallery": imageRankedGallery{},
			"video_with_timeline":  videoWithTimeline{},
			"audio_with_captions":  audioWithCaptions{},
		},
	}
}

// SupportedTypes returns the registered type names, sorted.
func (r *Registry) SupportedTypes() []string {
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Supports reports whether name is a registered item type.
func (r *Registry) Supports(name string) bool {
	_, ok := r.types[name]
	return ok
}

// Validate checks payload against the named type's shape, accumulating every
// diagnostic under path. An unsupported type yields a single
// unsupported_type error at path itself.
func (r *Registry) Validate(name, path string, payload map[string]interface{}) ErrorList {
	t, ok := r.types[name]
	if !ok {
		var errs ErrorList
		errs.Add(path, KindUnsupportedType, "unsupported item type %q", name)
		return errs
	}
	return t.validate(path, payload)
}

// ExtractAssetIDs returns the set of asset ids referenced by payload.
func (r *Registry) ExtractAssetIDs(name string, payload map[string]interface{}) ([]uuid.UUID, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return t.extractAssetIDs(payload), nil
}
