package img2ascii

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/asciimg/img2ascii/imageutil"
)

// ReadImageFile loads an image through OpenCV, which covers more formats
// and color layouts than the standard library decoders. When OpenCV
// cannot read the file, the pure Go decoders in imageutil are tried
// before giving up.
func ReadImageFile(path string) (*imageutil.RGBAImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		img, err := imageutil.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("could not read image from %s: %w", path, err)
		}
		return img, nil
	}
	defer func(mat *gocv.Mat) {
		if err := mat.Close(); err != nil {
			fmt.Println("Error closing image")
		}
	}(&mat)

	return matToRGBA(mat), nil
}

// matToRGBA converts an OpenCV BGR matrix to an RGBAImage.
func matToRGBA(mat gocv.Mat) *imageutil.RGBAImage {
	rows, cols := mat.Rows(), mat.Cols()
	img := imageutil.NewRGBAImage(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			vec := mat.GetVecbAt(y, x)
			// OpenCV stores channels as BGR
			img.SetRGB(x, y, imageutil.RGB{R: vec[2], G: vec[1], B: vec[0]})
		}
	}
	return img
}
