package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	l := NewRateLimiter()

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("login:a@example.com", 5), "attempt %d", i+1)
	}
	assert.False(t, l.Allow("login:a@example.com", 5))

	// A different identifier has its own bucket.
	assert.True(t, l.Allow("login:b@example.com", 5))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	l := NewRateLimiter()
	base := time.Now()
	current := base
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("k", 2))
	assert.True(t, l.Allow("k", 2))
	assert.False(t, l.Allow("k", 2))

	// 30s in: both attempts still inside the window.
	current = base.Add(30 * time.Second)
	assert.False(t, l.Allow("k", 2))

	// 61s in: the first two attempts aged out.
	current = base.Add(61 * time.Second)
	assert.True(t, l.Allow("k", 2))
}

func TestRateLimiterDisabledByNonPositiveLimit(t *testing.T) {
	l := NewRateLimiter()

	for i := 0; i < 1000; i++ {
		assert.True(t, l.Allow("k", 0))
	}
	assert.True(t, l.Allow("k", -1))
}

func TestRateLimiterDeniedAttemptsDoNotCount(t *testing.T) {
	l := NewRateLimiter()
	base := time.Now()
	current := base
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("k", 1))
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("k", 1))
	}

	// Only the single allowed attempt occupies the window.
	current = base.Add(61 * time.Second)
	assert.True(t, l.Allow("k", 1))
}
