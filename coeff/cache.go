package coeff

import "sync"

// cacheKey identifies one (family, set, baseDir) store.
type cacheKey struct {
	family, set byte
	baseDir     string
}

// Cache is an explicit (family, set) -> *Store registry, constructible by
// callers rather than hidden behind a package-level global, so tests can
// substitute a stub or a throwaway instance instead of sharing process
// state. A convenience package-level default is still provided in
// Default for callers that want the original single-process-cache
// ergonomics.
type Cache struct {
	mu     sync.Mutex
	stores map[cacheKey]*Store
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{stores: make(map[cacheKey]*Store)}
}

// Get returns the cached Store for (family, set, baseDir), constructing
// and caching it on first use.
func (c *Cache) Get(family, set byte, baseDir string) (*Store, error) {
	key := cacheKey{family, set, baseDir}

	c.mu.Lock()
	defer c.mu.Unlock()

	if store, ok := c.stores[key]; ok {
		return store, nil
	}

	store, err := Load(family, set, baseDir)
	if err != nil {
		return nil, err
	}
	c.stores[key] = store
	return store, nil
}

var defaultCache = NewCache()

// Default returns the process-wide convenience Cache.
func Default() *Cache { return defaultCache }
