package gateway

import (
	"sync"
)

// Tag identifies a cache dependency. An ID of "" is the whole-collection
// tag; a concrete ID tags a single entity.
type Tag struct {
	Type string
	ID   string
}

// CollectionTag returns the whole-collection tag for a resource type
func CollectionTag(resourceType string) Tag {
	return Tag{Type: resourceType}
}

// EntityTag returns the tag for one entity
func EntityTag(resourceType, id string) Tag {
	return Tag{Type: resourceType, ID: id}
}

// Cache is a tag-invalidated response cache. Reads are stored under a
// key derived from the request (path plus encoded query) together with
// the tags they depend on; invalidating a tag drops every entry that
// carries it. Instances are independent so tests construct their own.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	body []byte
	tags []Tag
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Get returns the cached body for key, if present
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.body, true
}

// Put stores body under key with its dependency tags
func (c *Cache) Put(key string, body []byte, tags ...Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{body: body, tags: tags}
}

// Invalidate drops every entry carrying any of the given tags.
// A collection tag (ID "") also matches entries tagged with concrete
// IDs of the same type, so invalidating a collection clears its
// entity detail entries too.
func (c *Cache) Invalidate(tags ...Tag) {
	if len(tags) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if entryMatches(entry, tags) {
			delete(c.entries, key)
		}
	}
}

// Clear drops everything, used on logout
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Len reports the number of live entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func entryMatches(entry *cacheEntry, tags []Tag) bool {
	for _, invalidated := range tags {
		for _, have := range entry.tags {
			if have.Type != invalidated.Type {
				continue
			}
			if invalidated.ID == "" || invalidated.ID == have.ID || have.ID == "" {
				return true
			}
		}
	}
	return false
}
