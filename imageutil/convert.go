package imageutil

import "image/color"

// ToGrayscale converts an RGBA image to single-channel luminance using
// the BT.601 weights: Y = 0.299*R + 0.587*G + 0.114*B, in integer math
// rounded to nearest.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Gray.SetGray(x, y, color.Gray{Y: Luma(img.GetRGB(x, y))})
		}
	}

	return gray
}

// Luma returns the BT.601 luminance of c.
func Luma(c RGB) uint8 {
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

