package img2ascii

import (
	"fmt"
	"image"
	"math/bits"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	// GlyphWidth and GlyphHeight define the standard character cell size
	GlyphWidth  = 16
	GlyphHeight = 16

	// GlyphPixels is the total cell count of a glyph grid. Raw brightness
	// is always the on-pixel count divided by this constant.
	GlyphPixels = GlyphWidth * GlyphHeight
)

// GlyphBitmap represents a 16x16 character cell as 256 bits.
// Each bit represents a pixel: 1 = foreground, 0 = background.
type GlyphBitmap [4]uint64

// GlyphSource provides fixed-size glyph bitmaps for characters. It is
// expected to be pure: the same rune always yields the same bitmap.
// Runes the source cannot render map to the zero bitmap.
type GlyphSource interface {
	Glyph(r rune) GlyphBitmap
}

// FontBitmaps holds pre-rendered character bitmaps for a font.
// It implements GlyphSource.
type FontBitmaps struct {
	glyphs   map[rune]GlyphBitmap
	fallback map[rune]GlyphBitmap
	name     string
}

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	pos := y*GlyphWidth + x
	return g[pos/64]&(1<<(pos%64)) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		g[pos/64] |= 1 << (pos % 64)
	} else {
		g[pos/64] &= ^(uint64(1) << (pos % 64))
	}
}

// OnPixels returns the number of set pixels in the bitmap.
func (g GlyphBitmap) OnPixels() int {
	return bits.OnesCount64(g[0]) + bits.OnesCount64(g[1]) +
		bits.OnesCount64(g[2]) + bits.OnesCount64(g[3])
}

// Brightness returns the fraction of set pixels in the bitmap, in [0, 1].
func (g GlyphBitmap) Brightness() float64 {
	return float64(g.OnPixels()) / GlyphPixels
}

// Glyph returns the bitmap for a character, checking the fallback font if
// the primary font has no glyph. Unknown runes yield the zero bitmap,
// which renders as empty space.
func (fb *FontBitmaps) Glyph(r rune) GlyphBitmap {
	if bitmap, exists := fb.glyphs[r]; exists {
		return bitmap
	}
	return fb.fallback[r]
}

// HasGlyph reports whether the font (or its fallback) has a bitmap for
// the rune.
func (fb *FontBitmaps) HasGlyph(r rune) bool {
	if _, exists := fb.glyphs[r]; exists {
		return true
	}
	_, exists := fb.fallback[r]
	return exists
}

// Name returns the font name or path the bitmaps were rendered from.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// LoadFontBitmaps pre-renders a TrueType font to 16x16 bitmaps covering
// the printable ASCII range plus any extra runes requested. The fallback
// font path is optional and consulted only for runes the primary font
// has no glyph for.
func LoadFontBitmaps(primaryPath, fallbackPath string, extra []rune) (*FontBitmaps, error) {
	fb := &FontBitmaps{
		glyphs:   make(map[rune]GlyphBitmap),
		fallback: make(map[rune]GlyphBitmap),
		name:     primaryPath,
	}

	primaryFont, err := loadFont(primaryPath)
	if err != nil {
		return nil, err
	}

	// Fallback font is optional
	var fallbackFont *truetype.Font
	if fallbackPath != "" {
		fallbackFont, _ = loadFont(fallbackPath)
	}

	render := func(r rune) {
		fb.glyphs[r] = renderGlyphToBitmap(primaryFont, r)
		if fallbackFont != nil {
			fb.fallback[r] = renderGlyphToBitmap(fallbackFont, r)
		}
	}

	// Pre-render the printable ASCII range
	for r := rune(32); r <= rune(126); r++ {
		render(r)
	}
	for _, r := range extra {
		if _, done := fb.glyphs[r]; !done {
			render(r)
		}
	}

	return fb, nil
}

// loadFont loads a TrueType font from file
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	return ttf, nil
}

// renderGlyphToBitmap renders a single glyph to a 16x16 bitmap.
//
// Implementation choices:
//
//  1. Alpha channel image: TrueType rendering produces anti-aliased
//     output, and the alpha channel directly represents pixel coverage,
//     giving the most accurate representation of the glyph shape before
//     thresholding.
//
//  2. 25% threshold (64/255): anti-aliased text has many edge pixels with
//     25-75% opacity. A higher threshold would lose these edge pixels,
//     making characters appear broken or too thin — the dot on 'i' or
//     thin serifs can disappear at a 50% threshold.
//
//  3. Dynamic baseline positioning: the baseline comes from font metrics
//     (ascent/descent) rather than a hardcoded offset, so descenders
//     (g,j,p,q,y) are not clipped for fonts with unusual proportions.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Alpha image handles anti-aliasing better than grayscale
	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()

	// Convert from 26.6 fixed point to pixels
	ascent := metrics.Ascent >> 6
	descent := metrics.Descent >> 6
	baselineY := (GlyphHeight + int(ascent) - int(descent)) / 2

	pt := freetype.Pt(0, baselineY)
	ctx.DrawString(string(r), pt)

	// Threshold at 25% alpha
	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}

	return bitmap
}
