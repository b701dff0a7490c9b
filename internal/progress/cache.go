package progress

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// generationStripes bounds the write generations kept in memory. Keys sharing
// a stripe only cause extra cache misses.
const generationStripes = 1024

// AggregateCache keeps computed aggregates for display. It is never the
// source of truth and every write to a plan's records must invalidate it.
//
// Readers take the Generation before loading records and hand it to Set;
// an Invalidate in between bumps the generation and the stale aggregate is
// dropped instead of cached.
type AggregateCache struct {
	cache      *freecache.Cache
	ttlSeconds int

	mu          sync.Mutex
	generations [generationStripes]uint64
}

// NewAggregateCache creates a cache of sizeMB megabytes. freecache enforces
// a minimum of 512KB.
func NewAggregateCache(sizeMB, ttlSeconds int) *AggregateCache {
	return &AggregateCache{
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

func cacheKey(userID, planID string) []byte {
	return []byte(userID + "|" + planID)
}

func stripe(key []byte) uint64 {
	return xxhash.Sum64(key) % generationStripes
}

func (c *AggregateCache) Get(userID, planID string) (*AggregateProgress, bool) {
	val, err := c.cache.Get(cacheKey(userID, planID))
	if err != nil {
		return nil, false
	}

	var agg AggregateProgress
	if err := json.Unmarshal(val, &agg); err != nil {
		log.Errorf("progress cache: unmarshal aggregate for %s/%s: %s", userID, planID, err)
		c.Invalidate(userID, planID)
		return nil, false
	}
	return &agg, true
}

// Generation returns the current write generation of the (user, plan) key.
func (c *AggregateCache) Generation(userID, planID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[stripe(cacheKey(userID, planID))]
}

// Set caches the aggregate computed at the given generation. It reports false
// when the key was invalidated since then.
func (c *AggregateCache) Set(userID, planID string, agg AggregateProgress, generation uint64) bool {
	val, err := json.Marshal(agg)
	if err != nil {
		log.Errorf("progress cache: marshal aggregate for %s/%s: %s", userID, planID, err)
		return false
	}

	key := cacheKey(userID, planID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[stripe(key)] != generation {
		log.Debugf("progress cache: aggregate for %s/%s outdated by a write, not cached", userID, planID)
		return false
	}
	if err := c.cache.Set(key, val, c.ttlSeconds); err != nil {
		// entries larger than 1/1024 of the cache size are rejected
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Debugf("progress cache: aggregate for %s/%s too large (%d bytes)", userID, planID, len(val))
			return false
		}
		log.Warnf("progress cache: set aggregate for %s/%s: %s", userID, planID, err)
		return false
	}
	return true
}

func (c *AggregateCache) Invalidate(userID, planID string) {
	key := cacheKey(userID, planID)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[stripe(key)]++
	c.cache.Del(key)
}

func (c *AggregateCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
