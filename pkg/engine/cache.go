package engine

import (
	"github.com/yourusername/sokoengine/internal/statekey"
)

// DefaultFitnessCacheSize is the default entry count for the annealing
// solver's fitness cache. The heuristic depends only on box placement, so a
// modest cache absorbs most of the re-evaluation cost of a random walk that
// keeps revisiting the same box configurations.
const DefaultFitnessCacheSize = 1 << 14

type fitnessEntry struct {
	key   statekey.Key
	value float64
	valid bool
}

// fitnessCache is a small two-way associative cache mapping box placements
// to heuristic values. Single-solve scope, not safe for concurrent use;
// every solve owns its own cache.
type fitnessCache struct {
	entries  []fitnessNode
	hashMask uint32

	lookups uint64
	hits    uint64
}

type fitnessNode struct {
	primary   fitnessEntry
	secondary fitnessEntry
}

// newFitnessCache creates a cache with the given entry count, rounded up to
// a power of two.
func newFitnessCache(size uint32) *fitnessCache {
	if size < 2 {
		size = 2
	}
	p := uint32(1)
	for p < size {
		p <<= 1
	}
	return &fitnessCache{
		entries:  make([]fitnessNode, p/2),
		hashMask: (p / 2) - 1,
	}
}

// hash mixes the key bytes MurmurHash3-style into a bucket index.
func (c *fitnessCache) hash(key statekey.Key) uint32 {
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593

	h := uint32(0)
	b := []byte(key)
	for i := 0; i+3 < len(b); i += 4 {
		k := uint32(b[i]) | uint32(b[i+1])<<8 | uint32(b[i+2])<<16 | uint32(b[i+3])<<24
		k *= c1
		k = (k << 15) | (k >> 17)
		k *= c2
		h ^= k
		h = (h << 13) | (h >> 19)
		h = h*5 + 0xe6546b64
	}
	if rem := len(b) % 4; rem != 0 {
		k := uint32(0)
		for i := len(b) - rem; i < len(b); i++ {
			k = k<<8 | uint32(b[i])
		}
		k *= c1
		k = (k << 15) | (k >> 17)
		k *= c2
		h ^= k
	}
	h ^= uint32(len(b))
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h & c.hashMask
}

// lookup returns the cached value for key, if present.
func (c *fitnessCache) lookup(key statekey.Key) (float64, bool) {
	c.lookups++
	node := &c.entries[c.hash(key)]
	if node.primary.valid && node.primary.key == key {
		c.hits++
		return node.primary.value, true
	}
	if node.secondary.valid && node.secondary.key == key {
		c.hits++
		// Promote to primary so repeated hits stay cheap.
		node.primary, node.secondary = node.secondary, node.primary
		return node.primary.value, true
	}
	return 0, false
}

// add stores a value, evicting the older entry in the bucket.
func (c *fitnessCache) add(key statekey.Key, value float64) {
	node := &c.entries[c.hash(key)]
	node.secondary = node.primary
	node.primary = fitnessEntry{key: key, value: value, valid: true}
}

// hitRate reports the fraction of lookups served from the cache.
func (c *fitnessCache) hitRate() float64 {
	if c.lookups == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.lookups)
}
