package img2ascii

import "math"

// CharMatcher maps brightness values to the best-matching character from
// a configurable character set. Each character's raw brightness is the
// fraction of set pixels in its 16x16 glyph bitmap; raw values are
// rescaled against the set's current minimum and maximum so the active
// range always spans [0, 1].
//
// The matcher owns two coupled ordered mappings: a base index from
// character to raw brightness (the source of truth) and a normalized
// index from normalized brightness to the characters sharing it (a
// derived, cached view). Adding or removing a character that changes the
// brightness extremes rebuilds the normalized index wholesale, since the
// rescaling of every other entry shifts with the range; otherwise the
// normalized index is patched in place.
//
// A CharMatcher is not safe for concurrent use. Callers sharing one
// across goroutines must serialize Add, Remove, and CharByBrightness.
type CharMatcher struct {
	glyphs     GlyphSource
	base       *baseIndex
	normalized *normIndex
}

// NewCharMatcher builds a matcher over the given character set, computing
// each character's brightness through the glyph source. Duplicate runes
// in charset collapse to one entry. Returns ErrEmptyCharset when charset
// is empty and ErrNoGlyphSource when glyphs is nil.
func NewCharMatcher(charset []rune, glyphs GlyphSource) (*CharMatcher, error) {
	if glyphs == nil {
		return nil, ErrNoGlyphSource
	}
	if len(charset) == 0 {
		return nil, ErrEmptyCharset
	}

	m := &CharMatcher{
		glyphs:     glyphs,
		base:       newBaseIndex(),
		normalized: &normIndex{},
	}
	for _, r := range charset {
		m.base.insert(r, m.rawBrightness(r))
	}
	m.rebuild()
	return m, nil
}

// rawBrightness computes a character's pixel density through the glyph
// collaborator.
func (m *CharMatcher) rawBrightness(r rune) float64 {
	return m.glyphs.Glyph(r).Brightness()
}

// CharByBrightness returns the character whose normalized brightness is
// closest to b. On an exact distance tie between two normalized keys the
// lower key wins; among characters sharing the winning key, the lowest
// character code wins. Queries outside the normalized range clamp to the
// nearest end. The matcher is never empty, so a result always exists.
func (m *CharMatcher) CharByBrightness(b float64) rune {
	ceilingEntry, hasCeiling := m.normalized.ceiling(b)
	floorEntry, hasFloor := m.normalized.floor(b)

	ceilingDistance := math.Inf(1)
	if hasCeiling {
		ceilingDistance = math.Abs(ceilingEntry.key - b)
	}
	floorDistance := math.Inf(1)
	if hasFloor {
		floorDistance = math.Abs(floorEntry.key - b)
	}

	// Strict comparison: on a tie the floor entry wins
	if ceilingDistance < floorDistance {
		return ceilingEntry.chars[0]
	}
	return floorEntry.chars[0]
}

// Add inserts a character into the active set, or refreshes its
// brightness if already present. When the character's raw brightness
// falls strictly outside the current extremes the normalized index is
// rebuilt; otherwise the character is patched in at its single
// normalized key.
func (m *CharMatcher) Add(r rune) {
	raw := m.rawBrightness(r)
	extendsRange := raw < m.base.min().brightness || raw > m.base.max().brightness

	if old, present := m.base.brightness(r); present && !extendsRange {
		// Update in place: clear the stale normalized placement first
		m.normalized.remove(m.normalize(old), r)
	}
	m.base.insert(r, raw)
	if extendsRange {
		m.rebuild()
		return
	}
	m.normalized.insert(m.normalize(raw), r)
}

// Remove deletes a character from the active set. Removing a character
// holding the minimum or maximum raw brightness rebuilds the normalized
// index, since the range may shrink. Returns ErrCharNotFound when the
// character is not in the set and ErrEmptyCharset when removal would
// leave the matcher with nothing to normalize against; in both cases the
// index is left untouched.
func (m *CharMatcher) Remove(r rune) error {
	raw, present := m.base.brightness(r)
	if !present {
		return ErrCharNotFound
	}
	if m.base.len() == 1 {
		return ErrEmptyCharset
	}

	wasExtreme := raw == m.base.min().brightness || raw == m.base.max().brightness
	m.base.remove(r)
	if wasExtreme {
		m.rebuild()
		return nil
	}
	m.normalized.remove(m.normalize(raw), r)
	return nil
}

// normalize rescales a raw brightness against the current extremes of
// the base index. When every character shares one raw brightness the
// range is degenerate and all entries map to 0.5, keeping lookups total
// instead of dividing by zero.
func (m *CharMatcher) normalize(raw float64) float64 {
	minBrightness := m.base.min().brightness
	maxBrightness := m.base.max().brightness
	if minBrightness == maxBrightness {
		return 0.5
	}
	return (raw - minBrightness) / (maxBrightness - minBrightness)
}

// rebuild reconstructs the normalized index from the base index's
// current contents and extremes.
func (m *CharMatcher) rebuild() {
	m.normalized = &normIndex{}
	for _, e := range m.base.entries {
		m.normalized.insert(m.normalize(e.brightness), e.char)
	}
}

// MinBrightness returns the lowest raw brightness in the active set.
func (m *CharMatcher) MinBrightness() float64 {
	return m.base.min().brightness
}

// MaxBrightness returns the highest raw brightness in the active set.
func (m *CharMatcher) MaxBrightness() float64 {
	return m.base.max().brightness
}

// Brightness returns the raw brightness recorded for a character and
// whether the character is in the active set.
func (m *CharMatcher) Brightness(r rune) (float64, bool) {
	return m.base.brightness(r)
}

// Contains reports whether a character is in the active set.
func (m *CharMatcher) Contains(r rune) bool {
	_, present := m.base.brightness(r)
	return present
}

// Chars returns the active character set ordered by raw brightness, with
// character code breaking ties.
func (m *CharMatcher) Chars() []rune {
	chars := make([]rune, len(m.base.entries))
	for i, e := range m.base.entries {
		chars[i] = e.char
	}
	return chars
}

// Len returns the number of characters in the active set.
func (m *CharMatcher) Len() int {
	return m.base.len()
}
