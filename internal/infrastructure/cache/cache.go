package cache

import (
	"sync"
	"time"
)

// Item is a cached value with an absolute expiration.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache used to keep repeated dashboard
// queries off the database. A background janitor removes expired items.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
	stop  chan struct{}
}

// New creates a cache whose janitor sweeps expired items every interval.
func New(interval time.Duration) *Cache {
	if interval <= 0 {
		interval = time.Minute
	}

	cache := &Cache{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cache.DeleteExpired()
			case <-cache.stop:
				return
			}
		}
	}()

	return cache
}

// Close stops the janitor goroutine.
func (c *Cache) Close() {
	close(c.stop)
}

// Set stores a value with the given TTL.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(ttl).UnixNano(),
	}
}

// Get returns the value and whether a non-expired entry was found.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteExpired removes all expired entries.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear removes everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]Item)
}
