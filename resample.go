package img2ascii

import (
	"fmt"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// DefaultTargetWidth is the output width in glyph columns.
	DefaultTargetWidth = 100
	// DefaultCellAspect compensates for monospace cells being taller than
	// they are wide.
	DefaultCellAspect = 0.55
)

// TargetSize computes the resampled grid for a srcW x srcH image at the
// given column count: height = round(width * srcH/srcW * cellAspect),
// never less than 1.
func TargetSize(srcW, srcH, width int, cellAspect float64) (int, int, error) {
	if width < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if !(cellAspect > 0) || math.IsInf(cellAspect, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidCellAspect, cellAspect)
	}
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, fmt.Errorf("%w: degenerate dimensions %dx%d", ErrInvalidImage, srcW, srcH)
	}

	aspectRatio := float64(srcH) / float64(srcW)
	height := int(math.Round(float64(width) * aspectRatio * cellAspect))
	return width, max(height, 1), nil
}

// Resample rescales img to width columns, preserving aspect ratio after
// cell compensation. The source is left untouched.
func Resample(
	img *imageutil.RGBAImage,
	width int,
	cellAspect float64,
	interp imageutil.Interpolation,
) (*imageutil.RGBAImage, error) {
	w, h, err := TargetSize(img.Width(), img.Height(), width, cellAspect)
	if err != nil {
		return nil, err
	}
	return imageutil.Resize(img, w, h, interp), nil
}
