// Package img2ascii converts images to ASCII art. An image is tiled
// into blocks, each block's mean brightness is computed, and every block
// is replaced by the character from the active set whose glyph pixel
// density best matches it. Character brightness comes from pre-rendered
// TrueType glyph bitmaps; matching runs against a normalized index that
// rescales the character set's brightness range to [0, 1].
package img2ascii

import (
	"github.com/asciimg/img2ascii/imageutil"
)

// BlockBrightness tiles an image into cols x rows blocks and returns the
// mean luminance of each block scaled to [0, 1]. Block boundaries are
// proportional, so the image does not need to divide evenly. Blocks
// outside the image (cols or rows exceeding the pixel dimensions) come
// back as 0.
func BlockBrightness(img *imageutil.RGBAImage, cols, rows int) [][]float64 {
	gray := imageutil.ToGrayscaleFloat(img)
	height := len(gray)
	width := 0
	if height > 0 {
		width = len(gray[0])
	}

	result := make([][]float64, rows)
	for by := 0; by < rows; by++ {
		result[by] = make([]float64, cols)
		y0 := by * height / rows
		y1 := (by + 1) * height / rows
		for bx := 0; bx < cols; bx++ {
			x0 := bx * width / cols
			x1 := (bx + 1) * width / cols
			result[by][bx] = meanBrightness(gray, x0, y0, x1, y1)
		}
	}
	return result
}

// meanBrightness averages the luminance of the pixel range
// [x0,x1) x [y0,y1), scaled from [0, 255] to [0, 1].
func meanBrightness(gray [][]float64, x0, y0, x1, y1 int) float64 {
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	var sum float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sum += gray[y][x]
		}
	}
	return sum / (255 * float64((x1-x0)*(y1-y0)))
}

// ImageToASCII converts an image file to ASCII art text using the
// default renderer configuration and character set. It is a convenience
// wrapper; use a Renderer for repeated conversions or custom settings.
func ImageToASCII(imagePath, fontPath string) (string, error) {
	renderer, err := NewRenderer(
		[]rune(DefaultCharset),
		nil,
		WithFont(fontPath),
	)
	if err != nil {
		return "", err
	}
	return renderer.RenderFile(imagePath)
}
