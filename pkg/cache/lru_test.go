package cache_test

import (
	"testing"
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/cache"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/metric"

	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, capacity int) *cache.LRUCache[string, int] {
	t.Helper()

	c, err := cache.NewLRUCache[string, int](capacity, "test", metric.NewFactory().Cache())
	require.NoError(t, err)
	return c
}

func TestNewLRUCache_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1} {
		_, err := cache.NewLRUCache[string, int](capacity, "test", metric.NewFactory().Cache())
		require.Error(t, err)
	}
}

func TestLRUCache_PutGet(t *testing.T) {
	t.Parallel()

	c := newCache(t, 4)

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, got)

	_, ok = c.Get("missing")
	require.False(t, ok)

	require.Equal(t, 2, c.Len())
	require.Equal(t, 4, c.Capacity())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	t.Parallel()

	c := newCache(t, 2)

	c.Put("a", 1, 0)
	c.Put("a", 10, 0)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, got)
	require.Equal(t, 1, c.Len())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := newCache(t, 2)

	var evictedKeys []string
	c.SetOnEvicted(func(key string, _ int) {
		evictedKeys = append(evictedKeys, key)
	})

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3, 0)

	require.False(t, c.Has("b"))
	require.True(t, c.Has("a"))
	require.True(t, c.Has("c"))
	require.Equal(t, []string{"b"}, evictedKeys)
}

func TestLRUCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	c := newCache(t, 4)

	c.Put("short", 1, 10*time.Millisecond)
	c.Put("forever", 2, 0)

	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("short")
	require.False(t, ok)
	require.False(t, c.Has("short"))

	got, ok := c.Get("forever")
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestLRUCache_Purge(t *testing.T) {
	t.Parallel()

	c := newCache(t, 4)

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)

	evicted := 0
	c.SetOnEvicted(func(string, int) { evicted++ })

	c.Purge()

	require.Zero(t, c.Len())
	require.Equal(t, 2, evicted)
	require.False(t, c.Has("a"))
}
