package search

import (
	"container/list"
	"sync"

	"github.com/standardbeagle/navmatch/pkg/patternmatch"
)

// PatternCache is a thread-safe LRU of compiled patterns keyed by raw query.
// Patterns are immutable, so a cached one can be shared between searches.
type PatternCache struct {
	maxSize int
	mu      sync.Mutex
	items   map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key     string
	pattern *patternmatch.Pattern
}

// NewPatternCache creates a cache holding at most maxSize patterns
func NewPatternCache(maxSize int) *PatternCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &PatternCache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get retrieves a pattern and marks it as recently used
func (c *PatternCache) Get(query string) (*patternmatch.Pattern, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).pattern, true
	}
	return nil, false
}

// Set adds or replaces a pattern, evicting the least recently used entry
// when the cache is full
func (c *PatternCache) Set(query string, pattern *patternmatch.Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).pattern = pattern
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: query, pattern: pattern})
	c.items[query] = elem

	if c.order.Len() > c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Compile returns the cached pattern for query, compiling it on a miss.
// Empty queries are not cached.
func (c *PatternCache) Compile(query string) (*patternmatch.Pattern, error) {
	if p, ok := c.Get(query); ok {
		return p, nil
	}
	p, err := patternmatch.Compile(query)
	if err != nil {
		return nil, err
	}
	c.Set(query, p)
	return p, nil
}

// Size returns the current number of cached patterns
func (c *PatternCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
