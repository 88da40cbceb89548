package imageutil

// Kernel represents a convolution kernel.
type Kernel struct {
	values [][]float64
	size   int
}

// NewKernel creates a kernel from a square 2D slice of weights.
func NewKernel(values [][]float64) *Kernel {
	return &Kernel{
		values: values,
		size:   len(values),
	}
}

// SharpeningKernel returns the standard 3x3 sharpening kernel.
func SharpeningKernel() *Kernel {
	return NewKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}

// Convolve applies a kernel to an RGBA image. Edge pixels are handled
// by clamping coordinates to the image bounds.
func Convolve(img *RGBAImage, kernel *Kernel) *RGBAImage {
	width, height := img.Width(), img.Height()
	result := NewRGBAImage(width, height)
	half := kernel.size / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float64

			for ky := 0; ky < kernel.size; ky++ {
				for kx := 0; kx < kernel.size; kx++ {
					px := clampInt(x+kx-half, 0, width-1)
					py := clampInt(y+ky-half, 0, height-1)
					c := img.GetRGB(px, py)
					weight := kernel.values[ky][kx]
					sumR += float64(c.R) * weight
					sumG += float64(c.G) * weight
					sumB += float64(c.B) * weight
				}
			}

			result.SetRGB(x, y, RGB{
				R: clampUint8(sumR),
				G: clampUint8(sumG),
				B: clampUint8(sumB),
			})
		}
	}

	return result
}

// Sharpen applies a mild sharpening filter to the image.
func Sharpen(img *RGBAImage) *RGBAImage {
	return Convolve(img, SharpeningKernel())
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
