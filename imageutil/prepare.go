package imageutil

// PrepareForASCII resizes an image for block-brightness sampling.
//
// The image is scaled to 2x the character grid, so each output character
// averages a 2x2 pixel neighborhood instead of a single sample, then
// optionally sharpened to keep fine structure visible after the heavy
// downscale.
//
// Parameters:
//   - img: the input image
//   - cols: output width in characters
//   - rows: output height in characters
//   - sharpen: apply a mild sharpening pass after resizing
//
// Returns the processed image at (cols*2 x rows*2).
func PrepareForASCII(img *RGBAImage, cols, rows int, sharpen bool) *RGBAImage {
	resized := Resize(img, cols*2, rows*2, InterpolationArea)
	if sharpen {
		resized = Sharpen(resized)
	}
	return resized
}
