package img2ascii

import (
	"image"
	"image/color"

	"github.com/asciimg/img2ascii/imageutil"
)

// RenderChars rasterizes a character grid back to an image using the
// glyph bitmaps, black glyphs on a white background. scale multiplies
// the 16x16 glyph cell by pixel replication.
func RenderChars(chars [][]rune, glyphs GlyphSource, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	height := len(chars)
	if height == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	width := len(chars[0])

	cellW := GlyphWidth * scale
	cellH := GlyphHeight * scale
	img := image.NewRGBA(image.Rect(0, 0, width*cellW, height*cellH))

	for y, row := range chars {
		for x, c := range row {
			renderGlyph(img, glyphs.Glyph(c), x*cellW, y*cellH, scale)
		}
	}

	return img
}

// renderGlyph draws one glyph bitmap at the given position with scaling.
func renderGlyph(img *image.RGBA, bitmap GlyphBitmap, startX, startY, scale int) {
	on := color.RGBA{A: 255}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			c := off
			if bitmap.getBit(x, y) {
				c = on
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.Set(startX+x*scale+sx, startY+y*scale+sy, c)
				}
			}
		}
	}
}

// SaveCharsToPNG rasterizes a character grid through the glyph bitmaps
// and writes it to a PNG file.
func SaveCharsToPNG(chars [][]rune, glyphs GlyphSource, filename string, scale int) error {
	return imageutil.SavePNG(RenderChars(chars, glyphs, scale), filename)
}
