package img2ascii

import (
	"testing"
)

// TestGlyphBitmapBitOperations tests basic bit operations on GlyphBitmap
func TestGlyphBitmapBitOperations(t *testing.T) {
	var bitmap GlyphBitmap

	// Test setting bits across all four words
	bitmap.setBit(0, 0, true)
	if !bitmap.getBit(0, 0) {
		t.Error("Expected bit at (0,0) to be set")
	}

	bitmap.setBit(15, 15, true)
	if !bitmap.getBit(15, 15) {
		t.Error("Expected bit at (15,15) to be set")
	}

	bitmap.setBit(3, 7, true)
	if !bitmap.getBit(3, 7) {
		t.Error("Expected bit at (3,7) to be set")
	}

	// Test clearing bits
	bitmap.setBit(0, 0, false)
	if bitmap.getBit(0, 0) {
		t.Error("Expected bit at (0,0) to be clear")
	}

	// Test out of bounds
	bitmap.setBit(16, 16, true)
	if bitmap.getBit(16, 16) {
		t.Error("Out of bounds bit should return false")
	}
	bitmap.setBit(-1, 0, true)
	if bitmap.getBit(-1, 0) {
		t.Error("Negative coordinate should return false")
	}
}

// TestGlyphBitmapBrightness tests pixel counting and density
func TestGlyphBitmapBrightness(t *testing.T) {
	var empty GlyphBitmap
	if empty.OnPixels() != 0 {
		t.Errorf("Expected 0 on-pixels for empty bitmap, got %d", empty.OnPixels())
	}
	if empty.Brightness() != 0 {
		t.Errorf("Expected brightness 0 for empty bitmap, got %v", empty.Brightness())
	}

	full := GlyphBitmap{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	if full.OnPixels() != GlyphPixels {
		t.Errorf("Expected %d on-pixels for full bitmap, got %d", GlyphPixels, full.OnPixels())
	}
	if full.Brightness() != 1.0 {
		t.Errorf("Expected brightness 1.0 for full bitmap, got %v", full.Brightness())
	}

	// Half block: top 8 rows set
	var half GlyphBitmap
	for y := 0; y < GlyphHeight/2; y++ {
		for x := 0; x < GlyphWidth; x++ {
			half.setBit(x, y, true)
		}
	}
	if half.OnPixels() != GlyphPixels/2 {
		t.Errorf("Expected %d on-pixels for half bitmap, got %d", GlyphPixels/2, half.OnPixels())
	}
	if half.Brightness() != 0.5 {
		t.Errorf("Expected brightness 0.5 for half bitmap, got %v", half.Brightness())
	}
}

// TestFontBitmapsGlyphLookup tests primary/fallback glyph resolution
func TestFontBitmapsGlyphLookup(t *testing.T) {
	full := GlyphBitmap{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	var dot GlyphBitmap
	dot.setBit(8, 8, true)

	fb := &FontBitmaps{
		glyphs:   map[rune]GlyphBitmap{'█': full},
		fallback: map[rune]GlyphBitmap{'·': dot},
		name:     "test",
	}

	if fb.Glyph('█') != full {
		t.Error("Expected primary glyph for '█'")
	}
	if fb.Glyph('·') != dot {
		t.Error("Expected fallback glyph for '·'")
	}
	if fb.Glyph('?').OnPixels() != 0 {
		t.Error("Unknown rune should yield the zero bitmap")
	}

	if !fb.HasGlyph('█') || !fb.HasGlyph('·') {
		t.Error("HasGlyph should report primary and fallback glyphs")
	}
	if fb.HasGlyph('?') {
		t.Error("HasGlyph should not report unknown runes")
	}
	if fb.Name() != "test" {
		t.Errorf("Expected name %q, got %q", "test", fb.Name())
	}
}
