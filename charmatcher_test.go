package img2ascii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stubGlyphs maps runes to on-pixel counts, filling bitmaps row by row.
// It stands in for font rendering so tests control brightness exactly.
type stubGlyphs map[rune]int

func (s stubGlyphs) Glyph(r rune) GlyphBitmap {
	var g GlyphBitmap
	for i := 0; i < s[r]; i++ {
		g.setBit(i%GlyphWidth, i/GlyphWidth, true)
	}
	return g
}

// normKeys returns the normalized index keys in order.
func normKeys(m *CharMatcher) []float64 {
	keys := make([]float64, 0, m.normalized.len())
	for _, e := range m.normalized.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func TestNewCharMatcherErrors(t *testing.T) {
	_, err := NewCharMatcher(nil, stubGlyphs{})
	require.ErrorIs(t, err, ErrEmptyCharset)

	_, err = NewCharMatcher([]rune{'a'}, nil)
	require.ErrorIs(t, err, ErrNoGlyphSource)
}

// TestTwoCharScenario walks the worked two-character example: 'a' with
// 64 on-pixels (raw 0.25) and 'b' with 192 (raw 0.75) normalize to 0.0
// and 1.0; a query equidistant from both keys resolves to the floor.
func TestTwoCharScenario(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 192}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)

	require.Equal(t, 0.25, m.MinBrightness())
	require.Equal(t, 0.75, m.MaxBrightness())
	require.Equal(t, []float64{0.0, 1.0}, normKeys(m))

	require.Equal(t, 'a', m.CharByBrightness(0.4))
	require.Equal(t, 'b', m.CharByBrightness(0.6))
	// Exact tie: lower key wins
	require.Equal(t, 'a', m.CharByBrightness(0.5))
}

// TestAddNewMaxRebuilds verifies that adding a character whose raw
// brightness exceeds the current maximum shifts every existing entry's
// normalized value.
func TestAddNewMaxRebuilds(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 160, 'c': 256}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)
	require.Equal(t, []float64{0.0, 1.0}, normKeys(m))

	m.Add('c')

	// Range widened from [0.25, 0.625] to [0.25, 1.0]
	require.Equal(t, 1.0, m.MaxBrightness())
	require.InDeltaSlice(t, []float64{0.0, 0.5, 1.0}, normKeys(m), 1e-15)
	require.Equal(t, 'a', m.CharByBrightness(0.0))
	require.Equal(t, 'b', m.CharByBrightness(0.5))
	require.Equal(t, 'c', m.CharByBrightness(1.0))
}

func TestAddNewMinRebuilds(t *testing.T) {
	glyphs := stubGlyphs{'a': 128, 'b': 192, 'c': 64}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)

	m.Add('c')

	require.Equal(t, 0.25, m.MinBrightness())
	require.InDeltaSlice(t, []float64{0.0, 0.5, 1.0}, normKeys(m), 1e-15)
	require.Equal(t, 'c', m.CharByBrightness(-1))
}

// TestAddWithinRangePatchesInPlace checks the incremental path: the
// existing keys must not move, and the new character lands at exactly
// one key.
func TestAddWithinRangePatchesInPlace(t *testing.T) {
	glyphs := stubGlyphs{'a': 0, 'b': 256, 'c': 128}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)

	m.Add('c')

	require.Equal(t, []float64{0.0, 0.5, 1.0}, normKeys(m))
	require.Equal(t, 3, m.Len())
	require.Equal(t, 'c', m.CharByBrightness(0.5))
}

func TestBoundaryLookup(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 128, 'c': 192}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c'}, glyphs)
	require.NoError(t, err)

	require.Equal(t, 'a', m.CharByBrightness(-0.5))
	require.Equal(t, 'a', m.CharByBrightness(0.0))
	require.Equal(t, 'c', m.CharByBrightness(1.0))
	require.Equal(t, 'c', m.CharByBrightness(7.5))
}

// TestTieBreakLowestCharCode: characters sharing one normalized key
// resolve to the lowest character code.
func TestTieBreakLowestCharCode(t *testing.T) {
	glyphs := stubGlyphs{'a': 0, 'x': 128, 'm': 128, 'z': 256}
	m, err := NewCharMatcher([]rune{'x', 'a', 'z', 'm'}, glyphs)
	require.NoError(t, err)

	// 'm' and 'x' share the key at 0.5
	require.Equal(t, []float64{0.0, 0.5, 1.0}, normKeys(m))
	require.Equal(t, 'm', m.CharByBrightness(0.5))

	// After removing 'm' the same key must yield 'x'
	require.NoError(t, m.Remove('m'))
	require.Equal(t, 'x', m.CharByBrightness(0.5))
}

// TestAddRemoveInverse: add followed by remove restores both indexes,
// first for a non-extreme character, then for a new extreme.
func TestAddRemoveInverse(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 192, 'n': 128, 'e': 256}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)

	baseBefore := append([]charBrightness(nil), m.base.entries...)
	normBefore := append([]normEntry(nil), m.normalized.entries...)

	m.Add('n')
	require.NoError(t, m.Remove('n'))
	require.Equal(t, baseBefore, m.base.entries)
	require.Equal(t, normBefore, m.normalized.entries)

	m.Add('e')
	require.NoError(t, m.Remove('e'))
	require.Equal(t, baseBefore, m.base.entries)
	require.Equal(t, normBefore, m.normalized.entries)
}

func TestRemoveExtremeRebuilds(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 128, 'c': 256}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c'}, glyphs)
	require.NoError(t, err)

	require.NoError(t, m.Remove('c'))

	// Range shrank to [0.25, 0.5]; 'b' is the new maximum
	require.Equal(t, 0.5, m.MaxBrightness())
	require.Equal(t, []float64{0.0, 1.0}, normKeys(m))
	require.Equal(t, 'b', m.CharByBrightness(1.0))
}

func TestRemoveNonExtremePatchesInPlace(t *testing.T) {
	glyphs := stubGlyphs{'a': 0, 'b': 128, 'c': 256}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c'}, glyphs)
	require.NoError(t, err)

	require.NoError(t, m.Remove('b'))

	// Key 0.5 emptied out and must be gone, extremes untouched
	require.Equal(t, []float64{0.0, 1.0}, normKeys(m))
	require.Equal(t, 2, m.Len())
	require.False(t, m.Contains('b'))
}

func TestRemoveErrors(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 192}
	m, err := NewCharMatcher([]rune{'a', 'b'}, glyphs)
	require.NoError(t, err)

	require.ErrorIs(t, m.Remove('q'), ErrCharNotFound)
	require.Equal(t, 2, m.Len())

	require.NoError(t, m.Remove('b'))
	require.ErrorIs(t, m.Remove('a'), ErrEmptyCharset)
	require.Equal(t, 1, m.Len())
	require.Equal(t, 'a', m.CharByBrightness(0.5))
}

// TestDegenerateRange: when every character shares one raw brightness,
// all entries map to normalized 0.5 and lookup stays total.
func TestDegenerateRange(t *testing.T) {
	glyphs := stubGlyphs{'a': 128, 'b': 128, 'c': 128}
	m, err := NewCharMatcher([]rune{'c', 'a', 'b'}, glyphs)
	require.NoError(t, err)

	require.Equal(t, []float64{0.5}, normKeys(m))
	require.Equal(t, 'a', m.CharByBrightness(0.0))
	require.Equal(t, 'a', m.CharByBrightness(1.0))

	// A single-character set is degenerate by definition
	single, err := NewCharMatcher([]rune{'x'}, stubGlyphs{'x': 200})
	require.NoError(t, err)
	require.Equal(t, []float64{0.5}, normKeys(single))
	require.Equal(t, 'x', single.CharByBrightness(0.9))
}

// TestMonotonicNormalization: raw-brightness order equals
// normalized-brightness order across the whole set.
func TestMonotonicNormalization(t *testing.T) {
	glyphs := stubGlyphs{'a': 17, 'b': 3, 'c': 250, 'd': 101, 'e': 77, 'f': 128}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c', 'd', 'e', 'f'}, glyphs)
	require.NoError(t, err)

	prev := -1.0
	for _, e := range m.base.entries {
		n := m.normalize(e.brightness)
		require.Greater(t, n, prev,
			"normalized order must follow raw order at %q", e.char)
		prev = n
	}
}

// TestIdempotentRebuild: rebuilding twice without a base-index change
// yields an identical normalized index.
func TestIdempotentRebuild(t *testing.T) {
	glyphs := stubGlyphs{'a': 10, 'b': 90, 'c': 90, 'd': 230}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c', 'd'}, glyphs)
	require.NoError(t, err)

	m.rebuild()
	first := append([]normEntry(nil), m.normalized.entries...)
	m.rebuild()
	require.Equal(t, first, m.normalized.entries)
}

// TestRoundTripStability: looking up a character's exact normalized
// value returns a character with the same raw brightness.
func TestRoundTripStability(t *testing.T) {
	glyphs := stubGlyphs{'a': 20, 'b': 60, 'c': 130, 'd': 130, 'e': 240}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c', 'd', 'e'}, glyphs)
	require.NoError(t, err)

	for _, c := range m.Chars() {
		raw, ok := m.Brightness(c)
		require.True(t, ok)
		got := m.CharByBrightness(m.normalize(raw))
		gotRaw, ok := m.Brightness(got)
		require.True(t, ok)
		require.Equal(t, raw, gotRaw, "lookup for %q returned %q", c, got)
	}
}

// TestReAddIsUpdate: adding a character already in the set keeps the
// indexes consistent and does not duplicate entries.
func TestReAddIsUpdate(t *testing.T) {
	glyphs := stubGlyphs{'a': 64, 'b': 128, 'c': 192}
	m, err := NewCharMatcher([]rune{'a', 'b', 'c'}, glyphs)
	require.NoError(t, err)

	m.Add('b')
	require.Equal(t, 3, m.Len())
	require.Equal(t, []float64{0.0, 0.5, 1.0}, normKeys(m))
	for _, e := range m.normalized.entries {
		require.Len(t, e.chars, 1)
	}
}

func TestCharsOrderedByBrightness(t *testing.T) {
	glyphs := stubGlyphs{'z': 10, 'a': 200, 'k': 10}
	m, err := NewCharMatcher([]rune{'a', 'z', 'k'}, glyphs)
	require.NoError(t, err)

	// Equal brightness orders by character code
	require.Equal(t, []rune{'k', 'z', 'a'}, m.Chars())
}
