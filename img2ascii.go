// Package img2ascii converts raster images to ASCII art.
//
// The pipeline resamples an image to a column count (compensating for
// glyph cells being taller than wide), reduces it to luminance and
// quantizes each sample to one glyph of [Palette], denser glyphs standing
// for darker pixels. The resulting [GlyphGrid] can be written as text or
// rasterized back to an image with a [Rasterizer].
//
//	conv := img2ascii.NewConverter(img2ascii.WithDetailLevel(10))
//	grid, err := conv.ConvertFile("photo.jpg")
//	if err != nil {
//		return err
//	}
//	fmt.Print(grid)
package img2ascii

import (
	"image"
)

// ImageToASCII converts img to ASCII art at the given width and detail
// level using the default cell aspect and filter.
func ImageToASCII(img image.Image, width, detailLevel int) (string, error) {
	grid, err := NewConverter(
		WithTargetWidth(width),
		WithDetailLevel(detailLevel),
	).Convert(img)
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}
