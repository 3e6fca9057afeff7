//go:build opencv

package imageutil

import (
	"image"

	"gocv.io/x/gocv"
)

func init() {
	resizers[InterpolationOpenCV] = resizeOpenCV
}

// resizeOpenCV resizes with OpenCV's INTER_AREA.
func resizeOpenCV(img *RGBAImage, width, height int) *RGBAImage {
	src := RGBAToMat(img)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationArea)
	return MatToRGBA(dst)
}

// MatToRGBA converts a BGR gocv.Mat to an RGBAImage.
func MatToRGBA(mat gocv.Mat) *RGBAImage {
	height, width := mat.Rows(), mat.Cols()
	img := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			vec := mat.GetVecbAt(y, x)
			img.SetRGB(x, y, RGB{R: vec[2], G: vec[1], B: vec[0]})
		}
	}
	return img
}

// RGBAToMat converts an RGBAImage to a BGR gocv.Mat. The caller owns the
// returned Mat and must Close it.
func RGBAToMat(img *RGBAImage) gocv.Mat {
	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8UC3)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			mat.SetUCharAt(y, x*3, c.B)
			mat.SetUCharAt(y, x*3+1, c.G)
			mat.SetUCharAt(y, x*3+2, c.R)
		}
	}
	return mat
}
