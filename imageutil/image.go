// Package imageutil holds the image plumbing behind the ASCII pipeline:
// decoding, resampling, luminance conversion and a few test pattern
// generators. Everything here operates on the standard image types.
package imageutil

import (
	"image"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with the standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBAImage wraps image.RGBA with a zero-origin bounds guarantee.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage copies any image.Image into a zero-origin, opaque
// RGBAImage. Alpha is dropped: each pixel keeps its straight
// (non-premultiplied) color, so fully transparent white stays white. An
// opaque *image.RGBA that already starts at the origin is wrapped without
// a copy.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Opaque() {
		return &RGBAImage{RGBA: rgba}
	}

	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// GrayImage wraps image.Gray; each sample is a luminance value in [0,255].
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// Luminance returns the sample at (x, y).
func (img *GrayImage) Luminance(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetLuminance sets the sample at (x, y).
func (img *GrayImage) SetLuminance(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// GrayFromRows builds a GrayImage from row-major luminance values. Rows
// shorter than the first row are zero padded.
func GrayFromRows(rows [][]uint8) *GrayImage {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	gray := NewGrayImage(width, height)
	for y, row := range rows {
		for x, v := range row {
			if x < width {
				gray.SetLuminance(x, y, v)
			}
		}
	}
	return gray
}
