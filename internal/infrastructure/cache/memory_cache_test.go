package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/domain"
)

func entry(key string) domain.CacheEntry {
	return domain.CacheEntry{
		Key:       key,
		Response:  domain.AssistantResponse{Provider: domain.ProviderFallback},
		CreatedAt: time.Unix(0, 0),
	}
}

func TestMemoryCacheEvictsEarliestInserted(t *testing.T) {
	c := NewMemoryCache(3)
	for _, k := range []string{"a", "b", "c"} {
		c.Set(entry(k))
	}

	// reads must not refresh "a"
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set(entry("d"))
	assert.Equal(t, 3, c.Len())
	_, ok = c.Get("a")
	assert.False(t, ok, "earliest inserted key should be evicted")
	for _, k := range []string{"b", "c", "d"} {
		_, ok := c.Get(k)
		assert.True(t, ok, k)
	}
}

func TestMemoryCacheNeverExceedsBound(t *testing.T) {
	c := NewMemoryCache(5)
	for i := 0; i < 50; i++ {
		c.Set(entry(fmt.Sprintf("k%d", i)))
		assert.LessOrEqual(t, c.Len(), 5)
	}

	var keys []string
	for _, e := range c.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"k45", "k46", "k47", "k48", "k49"}, keys)
}

func TestMemoryCacheClearAndResize(t *testing.T) {
	c := NewMemoryCache(4)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Set(entry(k))
	}

	c.Resize(2)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.MaxEntries())
	_, ok := c.Get("d")
	assert.True(t, ok)

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestMemoryCacheIgnoresEmptyKey(t *testing.T) {
	c := NewMemoryCache(0)
	assert.Equal(t, domain.DefaultMaxCacheEntries, c.MaxEntries())
	c.Set(entry(""))
	assert.Zero(t, c.Len())
}
