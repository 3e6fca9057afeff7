package imageutil

// PrepareOptions controls [PrepareForGlyphs].
type PrepareOptions struct {
	Interpolation Interpolation
	// Sharpen applies a mild sharpening pass after reduction to
	// luminance.
	Sharpen bool
}

// PrepareForGlyphs reduces an image to a luminance grid of exactly
// width x height samples, one per output glyph.
//
// The function:
//  1. Resizes to width x height with the requested interpolation
//  2. Converts to BT.601 luminance
//  3. Optionally sharpens the luminance grid
//
// The source image is not modified.
func PrepareForGlyphs(img *RGBAImage, width, height int, opts PrepareOptions) *GrayImage {
	resized := Resize(img, width, height, opts.Interpolation)
	gray := ToGrayscale(resized)
	if opts.Sharpen {
		gray = SharpenGray(gray)
	}
	return gray
}
