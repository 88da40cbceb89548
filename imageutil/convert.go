package imageutil

// Luminance returns the perceived brightness of a color in [0, 255]
// using the BT.601 luminance formula: Y = 0.299*R + 0.587*G + 0.114*B.
// This matches OpenCV's COLOR_BGR2GRAY weighting.
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ToGrayscaleFloat converts an RGBA image to grayscale, returning
// floating-point luminance values in [0, 255] indexed as [y][x].
func ToGrayscaleFloat(img *RGBAImage) [][]float64 {
	width, height := img.Width(), img.Height()
	gray := make([][]float64, height)

	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			gray[y][x] = Luminance(img.GetRGB(x, y))
		}
	}

	return gray
}
