package movieapi

import (
	"net/url"
	"sync"
	"time"
)

// responseCache is a read-through TTL cache over upstream responses, shared
// by every caller of the client. Failed lookups are stored alongside
// successful ones: a transient upstream error keeps being served until the
// entry expires, exactly like a cached success.
type responseCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body      []byte
	err       error
	fetchedAt time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached (body, err) pair for key. An entry older than the
// TTL is treated as absent and dropped.
func (c *responseCache) get(key string) ([]byte, error, bool) {
	if c.ttl <= 0 {
		return nil, nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, nil, false
	}

	// Callers hand decoded bytes straight to the JSON parser; copy so a
	// misbehaving caller cannot corrupt the stored payload.
	body := make([]byte, len(entry.body))
	copy(body, entry.body)
	return body, entry.err, true
}

func (c *responseCache) put(key string, body []byte, err error) {
	if c.ttl <= 0 {
		return
	}

	stored := make([]byte, len(body))
	copy(stored, body)

	c.mu.Lock()
	c.entries[key] = cacheEntry{
		body:      stored,
		err:       err,
		fetchedAt: c.now(),
	}
	c.mu.Unlock()
}

// clear drops every cached entry
func (c *responseCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// cacheKey derives the cache key from the request path and encoded params
func cacheKey(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
