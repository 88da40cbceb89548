package img2ascii

// cacheQuantization is the number of brightness steps the lookup cache
// distinguishes. The smallest gap between two normalized keys is the
// glyph grid's density step (1/256) divided by the brightness range, so
// 4096 steps keeps the quantization error well inside half a key gap for
// any realistic character set.
const cacheQuantization = 1 << 12

// brightnessCache memoizes brightness-to-character lookups. Resized
// natural images reuse a small number of distinct block brightness
// values, so most blocks after the first few rows hit the cache. The
// cache must be dropped whenever the matcher's character set changes.
type brightnessCache struct {
	entries map[uint16]rune
	hits    int
	misses  int
}

func newBrightnessCache() *brightnessCache {
	return &brightnessCache{entries: make(map[uint16]rune)}
}

// key quantizes a brightness value to a cache key. Values outside [0, 1]
// clamp to the range ends, matching the matcher's boundary behavior.
func (c *brightnessCache) key(b float64) uint16 {
	if b <= 0 {
		return 0
	}
	if b >= 1 {
		return cacheQuantization - 1
	}
	return uint16(b * cacheQuantization)
}

// get retrieves the cached character for a brightness value.
func (c *brightnessCache) get(b float64) (rune, bool) {
	r, found := c.entries[c.key(b)]
	if found {
		c.hits++
	} else {
		c.misses++
	}
	return r, found
}

// put records the character chosen for a brightness value.
func (c *brightnessCache) put(b float64, r rune) {
	c.entries[c.key(b)] = r
}

// reset drops all cached entries and statistics.
func (c *brightnessCache) reset() {
	c.entries = make(map[uint16]rune)
	c.hits = 0
	c.misses = 0
}
