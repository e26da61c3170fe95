package search

import (
	"container/list"
	"sync"
)

// Cache is an LRU cache of query results, keyed by the raw query string.
// It exists for interactive callers that re-run the same queries (backspace,
// palette reopen): results for an unchanged record set are deterministic, so
// a hit is always valid until the record set changes. The owner must Clear
// the cache whenever records are added, removed, or retitled.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	query   string
	results []Result
}

// NewCache creates an LRU cache holding at most maxSize query entries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &Cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get returns cached results for a query, or nil on a miss.
// The returned slice is a copy; callers may truncate it freely.
func (c *Cache) Get(query string) []Result {
	// Misses are the common case; check with the read lock first.
	c.mu.RLock()
	_, ok := c.items[query]
	if !ok {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check in case the entry was evicted between locks.
	elem, ok := c.items[query]
	if !ok {
		return nil
	}

	c.lru.MoveToFront(elem)

	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	results := make([]Result, len(entry.results))
	copy(results, entry.results)
	return results
}

// Set stores results for a query, evicting the least recently used entry
// when at capacity. The results are copied on the way in.
func (c *Cache) Set(query string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
		entry.results = copyResults(results)
		return
	}

	if c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}

	entry := &cacheEntry{query: query, results: copyResults(results)}
	c.items[query] = c.lru.PushFront(entry)
}

// Delete removes a single query entry.
func (c *Cache) Delete(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.removeElement(elem)
	}
}

// Clear removes all entries. Call this whenever the record set changes.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// evictOldest removes the least recently used entry. Lock must be held.
func (c *Cache) evictOldest() {
	if elem := c.lru.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// removeElement removes an element. Lock must be held.
func (c *Cache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	delete(c.items, entry.query)
}

func copyResults(results []Result) []Result {
	copied := make([]Result, len(results))
	copy(copied, results)
	return copied
}
