// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rushilcs/data-viewer/internal/cache"
	"github.com/rushilcs/data-viewer/internal/domain"
)

// CacheService wraps the in-memory cache with typed get/set. Its only
// consumer today is signed-URL minting, where a hit saves a token mint
// and a miss costs nothing.
type CacheService struct {
	cache *cache.InMemoryCache
}

type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())
	return &CacheService{cache: c}
}

// Set stores value under key for the configured TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Set(ctx, key, value)
	return nil
}

// Get loads the value under key into result, or domain.ErrNotFound on a
// miss or expired entry.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	switch v := value.(type) {
	case []byte:
		if err := json.Unmarshal(v, result); err != nil {
			return fmt.Errorf("unmarshaling cached value: %w", err)
		}
	default:
		if err := assignValue(value, result); err != nil {
			return fmt.Errorf("assigning cached value: %w", err)
		}
	}
	return nil
}

// Delete removes key from the cache.
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Delete(ctx, key)
	return nil
}

// Close stops the background cleanup loop.
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}

// assignValue copies src into dst, going through JSON for anything that
// is not a plain interface target.
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling value: %w", err)
	}
	return nil
}
