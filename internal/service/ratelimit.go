// internal/service/ratelimit.go
package service

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window counter keyed by caller identity, shared
// process-wide. It is best-effort: losing a bucket costs an extra allowed
// request, never correctness.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	window  time.Duration
	now     func() time.Time
}

const maxBuckets = 100000

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string][]time.Time),
		window:  time.Minute,
		now:     time.Now,
	}
}

// Allow records an attempt for identifier and reports whether it is within
// limit events per window. A non-positive limit disables limiting.
func (l *RateLimiter) Allow(identifier string, limit int) bool {
	if limit <= 0 {
		return true
	}

	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.buckets[identifier]
	bucket := prev[:0]
	for _, t := range prev {
		if t.After(cutoff) {
			bucket = append(bucket, t)
		}
	}

	if len(bucket) >= limit {
		l.buckets[identifier] = bucket
		return false
	}

	if len(l.buckets) >= maxBuckets {
		// Bound memory: drop everything rather than track stale callers.
		l.buckets = make(map[string][]time.Time)
	}
	l.buckets[identifier] = append(bucket, now)
	return true
}
