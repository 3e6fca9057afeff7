package img2ascii

import "fmt"

// Palette holds the glyphs used for ASCII art ordered from the densest ink
// (index 0, drawn for the darkest pixels) to the lightest.
const Palette = "@#S%?*+;:,."

// PaletteSize is the number of glyphs in [Palette].
const PaletteSize = len(Palette)

const (
	// MinDetailLevel is the smallest accepted detail level.
	MinDetailLevel = 1
	// MaxDetailLevel is the largest accepted detail level, one bucket per
	// palette glyph.
	MaxDetailLevel = PaletteSize
	// DefaultDetailLevel is used when no detail level is configured.
	DefaultDetailLevel = 10
)

// Glyph returns the palette glyph at index i. i must be in
// [0, PaletteSize).
func Glyph(i int) rune {
	return rune(Palette[i])
}

// ValidateDetailLevel reports whether d is an accepted detail level.
func ValidateDetailLevel(d int) error {
	if d < MinDetailLevel || d > MaxDetailLevel {
		return fmt.Errorf("%w: %d is outside [%d, %d]",
			ErrInvalidDetailLevel, d, MinDetailLevel, MaxDetailLevel)
	}
	return nil
}

// BucketWidth returns the width of one luminance bucket at detail level d.
// It never returns less than 1.
func BucketWidth(d int) int {
	if d < 1 {
		d = 1
	}
	return max(255/d, 1)
}

// GlyphIndex maps luminance v to a palette index at detail level d. The
// result is clamped to the last palette index, so v = 255 is always safe.
func GlyphIndex(v uint8, d int) int {
	return min(int(v)/BucketWidth(d), PaletteSize-1)
}
