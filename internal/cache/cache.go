package cache

import (
	"github.com/dgraph-io/ristretto"
)

// LinkCache keeps the immutable part of a link (code -> original URL) so the
// redirect path can skip the store lookup. Click counters are never cached.
type LinkCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache}, nil
}

func (c *LinkCache) Get(code string) (string, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return "", false
	}
	originalURL, ok := val.(string)
	return originalURL, ok
}

func (c *LinkCache) Set(code, originalURL string) {
	cost := int64(len(code) + len(originalURL))
	c.cache.Set(code, originalURL, cost)
}

func (c *LinkCache) Delete(code string) {
	c.cache.Del(code)
}

// Wait blocks until buffered writes have been applied.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
