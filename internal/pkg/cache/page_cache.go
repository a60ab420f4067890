package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics reports how a cache has been used since it was created.
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Items  int
}

// PageCache keeps rendered page bytes keyed by route and navbar variant. Page
// content is immutable, so a cached body is byte-identical to a fresh render.
type PageCache struct {
	store  *gocache.Cache
	logger *zap.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewPageCache creates a cache whose entries live for ttl. A non-positive ttl
// keeps entries until Clear.
func NewPageCache(ttl time.Duration, logger *zap.Logger) *PageCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	expiration := ttl
	cleanup := ttl * 2
	if ttl <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &PageCache{
		store:  gocache.New(expiration, cleanup),
		logger: logger,
	}
}

func Key(route, variant string) string {
	return route + "|" + variant
}

func (c *PageCache) Get(key string) ([]byte, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return v.([]byte), true
}

func (c *PageCache) Set(key string, body []byte) {
	c.store.SetDefault(key, body)
	c.logger.Debug("Cached rendered page", zap.String("key", key), zap.Int("bytes", len(body)))
}

func (c *PageCache) Clear() {
	c.store.Flush()
}

func (c *PageCache) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Items:  c.store.ItemCount(),
	}
}
