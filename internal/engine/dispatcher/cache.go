package dispatcher

import (
	"sync"

	"go.trai.ch/fuse/internal/core/domain"
)

// Cache remembers the last merged mutation for each mutation name.
// Each name has a single slot; storing an entry replaces the previous one.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*domain.CacheEntry // mutation name -> entry
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*domain.CacheEntry),
	}
}

// Get returns the entry stored for mutationName.
func (c *Cache) Get(mutationName string) (*domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[mutationName]
	return entry, ok
}

// Lookup returns the cached merge for mutationName if it was built from exactly set.
func (c *Cache) Lookup(mutationName string, set *domain.MutationStringSet) (string, bool) {
	entry, ok := c.Get(mutationName)
	if !ok || !entry.Matches(set) {
		return "", false
	}
	return entry.FullMutation, true
}

// Set stores entry as the only entry for mutationName.
func (c *Cache) Set(mutationName string, entry *domain.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[mutationName] = entry
}

// Invalidate drops the entry for mutationName.
func (c *Cache) Invalidate(mutationName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, mutationName)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of cached mutation names.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
