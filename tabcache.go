package stylebot

import "sync"

// TabCache holds computed styles keyed by tab id. It is explicit state
// passed to the calls that need it rather than package-level ambient
// state, so hosts can scope one cache per browser session and drop it
// wholesale.
type TabCache struct {
	mu    sync.RWMutex
	byTab map[int]ComputedStyles
}

// NewTabCache creates an empty cache.
func NewTabCache() *TabCache {
	return &TabCache{byTab: make(map[int]ComputedStyles)}
}

// Get returns the cached styles for a tab.
func (c *TabCache) Get(tabID int) (ComputedStyles, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cs, ok := c.byTab[tabID]
	return cs, ok
}

// Put records the computed styles for a tab.
func (c *TabCache) Put(tabID int, cs ComputedStyles) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byTab[tabID] = cs
}

// Invalidate drops the entry for a tab, typically on navigation or tab
// close.
func (c *TabCache) Invalidate(tabID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byTab, tabID)
}

// Clear drops every entry. Called after bulk mutations.
func (c *TabCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byTab = make(map[int]ComputedStyles)
}

// Len returns the number of cached tabs.
func (c *TabCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byTab)
}
