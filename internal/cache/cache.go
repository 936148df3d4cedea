// Package cache keeps hydrated datasets in memory so filter and stats requests
// do not re-read the snapshot store on every call.
package cache

import (
	"sync"
	"time"

	"lindash/internal/models"
)

type entry struct {
	dataset   *models.Dataset
	expiresAt time.Time
}

// Cache is an in-memory TTL cache of datasets keyed by export id.
type Cache struct {
	items map[string]*entry
	mutex sync.Mutex
}

// New creates a new cache instance
func New() *Cache {
	return &Cache{
		items: make(map[string]*entry),
	}
}

// Get retrieves a dataset from the cache. Expired entries are removed on read.
func (c *Cache) Get(key string) (*models.Dataset, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}

	return item.dataset, true
}

// Set stores a dataset in the cache with TTL
func (c *Cache) Set(key string, d *models.Dataset, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &entry{
		dataset:   d,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a dataset from the cache
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Clear removes all cached datasets
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[string]*entry)
}
