package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", "v")
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := NewInMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", "v")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	// The lazy read path also removed the entry.
	assert.Equal(t, 0, c.Len())
}

func TestCacheDelete(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", 42)
	c.Delete(ctx, "k")
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestCacheEvictsWhenFull(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	c.maxEntries = 10
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 10, c.Len())

	// The newest entry always survives an eviction.
	got, ok := c.Get(ctx, "k14")
	require.True(t, ok)
	assert.Equal(t, 14, got)
}

func TestCacheBackgroundCleanup(t *testing.T) {
	c := NewInMemoryCache(5*time.Millisecond, 10*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", "v")
	c.StartCleanup(ctx)
	defer c.StopCleanup()

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}
