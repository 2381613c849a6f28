package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// MemoryCache keeps responses in process memory, bounded by maxEntries.
// Reads use Peek so only insertion order decides which entry is evicted.
type MemoryCache struct {
	mu         sync.Mutex
	entries    *lru.Cache[string, domain.CacheEntry]
	maxEntries int
}

// NewMemoryCache returns a cache holding at most maxEntries responses.
// Values below 1 fall back to domain.DefaultMaxCacheEntries.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries < 1 {
		maxEntries = domain.DefaultMaxCacheEntries
	}
	entries, err := lru.New[string, domain.CacheEntry](maxEntries)
	if err != nil {
		// only reachable with a non-positive size
		panic(err)
	}
	return &MemoryCache{entries: entries, maxEntries: maxEntries}
}

// Get retrieves a cache entry without touching eviction order.
func (c *MemoryCache) Get(key string) (domain.CacheEntry, bool) {
	if key == "" {
		return domain.CacheEntry{}, false
	}
	return c.entries.Peek(key)
}

// Set stores an entry, evicting the earliest inserted one when full.
func (c *MemoryCache) Set(entry domain.CacheEntry) {
	if entry.Key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(entry.Key, entry)
}

// Clear removes all cached entries.
func (c *MemoryCache) Clear() {
	c.entries.Purge()
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}

// MaxEntries reports the configured bound.
func (c *MemoryCache) MaxEntries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxEntries
}

// Resize changes the bound, dropping the oldest entries if it shrinks.
func (c *MemoryCache) Resize(size int) {
	if size < 1 {
		size = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Resize(size)
	c.maxEntries = size
}

// Entries lists cached entries, oldest first.
func (c *MemoryCache) Entries() []domain.CacheEntry {
	keys := c.entries.Keys()
	out := make([]domain.CacheEntry, 0, len(keys))
	for _, key := range keys {
		if entry, ok := c.entries.Peek(key); ok {
			out = append(out, entry)
		}
	}
	return out
}

var _ ports.ResponseCache = (*MemoryCache)(nil)
