package img2ascii

import (
	"fmt"

	"github.com/asciimg/img2ascii/imageutil"
)

// Renderer encapsulates all state for ASCII image conversion: the
// character matcher, the glyph source brightness is computed from, and
// the sizing configuration. A Renderer can convert any number of images;
// the brightness lookup cache persists across conversions and is dropped
// automatically when the character set changes.
type Renderer struct {
	// Configuration options
	TargetWidth int
	ScaleFactor float64
	Invert      bool
	SharpenPass bool

	matcher *CharMatcher
	glyphs  GlyphSource
	cache   *brightnessCache
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer) error

// NewRenderer creates a Renderer over the given character set.
// Default values: TargetWidth=80, ScaleFactor=2.0 (terminal cells are
// roughly twice as tall as wide), no inversion, no sharpening.
//
// The glyph source may be nil if a WithFont option supplies one.
func NewRenderer(charset []rune, glyphs GlyphSource, opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		TargetWidth: 80,
		ScaleFactor: 2.0,
		glyphs:      glyphs,
		cache:       newBrightnessCache(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	matcher, err := NewCharMatcher(charset, r.glyphs)
	if err != nil {
		return nil, err
	}
	r.matcher = matcher
	return r, nil
}

// WithTargetWidth sets the output width in characters.
func WithTargetWidth(width int) RendererOption {
	return func(r *Renderer) error {
		if width < 1 {
			return fmt.Errorf("img2ascii: target width %d out of range", width)
		}
		r.TargetWidth = width
		return nil
	}
}

// WithScaleFactor sets the aspect ratio correction for terminal
// character cells.
func WithScaleFactor(factor float64) RendererOption {
	return func(r *Renderer) error {
		if factor <= 0 {
			return fmt.Errorf("img2ascii: scale factor %v out of range", factor)
		}
		r.ScaleFactor = factor
		return nil
	}
}

// WithInvert flips the brightness mapping, for rendering to dark
// terminal backgrounds where bright image areas should map to dense
// glyphs.
func WithInvert(invert bool) RendererOption {
	return func(r *Renderer) error {
		r.Invert = invert
		return nil
	}
}

// WithSharpen enables a mild sharpening pass after resizing.
func WithSharpen(sharpen bool) RendererOption {
	return func(r *Renderer) error {
		r.SharpenPass = sharpen
		return nil
	}
}

// WithFont loads a TrueType font and uses its glyph bitmaps as the
// brightness source.
func WithFont(path string) RendererOption {
	return func(r *Renderer) error {
		fb, err := LoadFontBitmaps(path, "", nil)
		if err != nil {
			return err
		}
		r.glyphs = fb
		return nil
	}
}

// WithGlyphSource sets the glyph source directly.
func WithGlyphSource(glyphs GlyphSource) RendererOption {
	return func(r *Renderer) error {
		r.glyphs = glyphs
		return nil
	}
}

// Glyphs returns the glyph source the renderer computes brightness from.
func (r *Renderer) Glyphs() GlyphSource {
	return r.glyphs
}

// Matcher exposes the underlying character matcher for queries. Mutate
// the character set through AddChar/RemoveChar so the lookup cache stays
// consistent.
func (r *Renderer) Matcher() *CharMatcher {
	return r.matcher
}

// AddChar adds a character to the active set and drops the lookup cache.
func (r *Renderer) AddChar(c rune) {
	r.matcher.Add(c)
	r.cache.reset()
}

// RemoveChar removes a character from the active set and drops the
// lookup cache. The cache survives a failed removal untouched.
func (r *Renderer) RemoveChar(c rune) error {
	if err := r.matcher.Remove(c); err != nil {
		return err
	}
	r.cache.reset()
	return nil
}

// charFor resolves one block brightness to a character, consulting the
// lookup cache first.
func (r *Renderer) charFor(brightness float64) rune {
	if r.Invert {
		brightness = 1 - brightness
	}
	if c, found := r.cache.get(brightness); found {
		return c
	}
	c := r.matcher.CharByBrightness(brightness)
	r.cache.put(brightness, c)
	return c
}

// RenderImage converts an in-memory image to a character grid. The
// output is TargetWidth characters wide; the height follows the image
// aspect ratio corrected by ScaleFactor.
func (r *Renderer) RenderImage(img *imageutil.RGBAImage) [][]rune {
	cols := r.TargetWidth
	rows := int(float64(cols) * float64(img.Height()) / float64(img.Width()) / r.ScaleFactor)
	if rows < 1 {
		rows = 1
	}

	resized := imageutil.PrepareForASCII(img, cols, rows, r.SharpenPass)
	brightness := BlockBrightness(resized, cols, rows)
	chars := make([][]rune, rows)
	for y, row := range brightness {
		chars[y] = make([]rune, cols)
		for x, b := range row {
			chars[y][x] = r.charFor(b)
		}
	}
	return chars
}

// RenderFile converts an image file to ASCII art text.
func (r *Renderer) RenderFile(path string) (string, error) {
	img, err := ReadImageFile(path)
	if err != nil {
		return "", err
	}
	return CharsToString(r.RenderImage(img)), nil
}

// CacheStats returns lookup cache hit/miss statistics.
func (r *Renderer) CacheStats() (hits, misses int, hitRate float64) {
	total := r.cache.hits + r.cache.misses
	if total == 0 {
		return 0, 0, 0
	}
	return r.cache.hits, r.cache.misses, float64(r.cache.hits) / float64(total)
}

// ResetStats drops the lookup cache and its statistics.
func (r *Renderer) ResetStats() {
	r.cache.reset()
}
