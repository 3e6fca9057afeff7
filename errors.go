package img2ascii

import "errors"

var (
	// ErrInvalidImage indicates the source image could not be decoded or
	// has a zero width or height.
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidDetailLevel indicates a detail level outside
	// [MinDetailLevel, MaxDetailLevel].
	ErrInvalidDetailLevel = errors.New("invalid detail level")
	// ErrInvalidWidth indicates a target width below one column.
	ErrInvalidWidth = errors.New("invalid target width")
	// ErrInvalidCellAspect indicates a non-positive cell aspect factor.
	ErrInvalidCellAspect = errors.New("invalid cell aspect")
	// ErrEmptyArt indicates there were no rows to render.
	ErrEmptyArt = errors.New("empty ascii art")
	// ErrUnsupportedFormat indicates an unrecognized output format. It is
	// returned alongside [FormatText] so callers can warn and carry on.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
