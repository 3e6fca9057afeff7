package img2ascii

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/wbrown/img2ascii/imageutil"
)

// Converter holds the configuration of the image to ASCII pipeline. A
// Converter carries no per-image state, so one value can convert any
// number of images.
type Converter struct {
	TargetWidth   int
	DetailLevel   int
	CellAspect    float64
	Interpolation imageutil.Interpolation
	Sharpen       bool

	logger *slog.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a new Converter with the given options.
// Default values: TargetWidth=100, DetailLevel=10, CellAspect=0.55,
// Interpolation=area, Sharpen=false.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		TargetWidth:   DefaultTargetWidth,
		DetailLevel:   DefaultDetailLevel,
		CellAspect:    DefaultCellAspect,
		Interpolation: imageutil.InterpolationArea,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTargetWidth sets the output width in glyph columns.
func WithTargetWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

// WithDetailLevel sets how many luminance buckets are used.
func WithDetailLevel(d int) ConverterOption {
	return func(c *Converter) {
		c.DetailLevel = d
	}
}

// WithCellAspect sets the height compensation factor for glyph cells.
func WithCellAspect(aspect float64) ConverterOption {
	return func(c *Converter) {
		c.CellAspect = aspect
	}
}

// WithInterpolation sets the resampling filter.
func WithInterpolation(interp imageutil.Interpolation) ConverterOption {
	return func(c *Converter) {
		c.Interpolation = interp
	}
}

// WithSharpen enables a mild sharpening pass after resampling.
func WithSharpen(sharpen bool) ConverterOption {
	return func(c *Converter) {
		c.Sharpen = sharpen
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Convert resamples img, reduces it to luminance and quantizes it to
// glyphs. The detail level is validated before any image work happens.
func (c *Converter) Convert(img image.Image) (GlyphGrid, error) {
	if err := ValidateDetailLevel(c.DetailLevel); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}

	bounds := img.Bounds()
	width, height, err := TargetSize(bounds.Dx(), bounds.Dy(), c.TargetWidth, c.CellAspect)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("resampling",
		slog.Int("src_width", bounds.Dx()),
		slog.Int("src_height", bounds.Dy()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("interpolation", c.Interpolation.String()),
	)

	gray := imageutil.PrepareForGlyphs(imageutil.RGBAImageFromImage(img), width, height,
		imageutil.PrepareOptions{
			Interpolation: c.Interpolation,
			Sharpen:       c.Sharpen,
		})

	grid, err := Quantize(gray, c.DetailLevel)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("quantized",
		slog.Int("detail_level", c.DetailLevel),
		slog.Int("bucket_width", BucketWidth(c.DetailLevel)),
		slog.Int("rows", grid.Rows()),
		slog.Int("cols", grid.Cols()),
	)

	return grid, nil
}

// ConvertFile decodes the image at path and converts it. Decode failures
// wrap [ErrInvalidImage].
func (c *Converter) ConvertFile(path string) (GlyphGrid, error) {
	if err := ValidateDetailLevel(c.DetailLevel); err != nil {
		return nil, err
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidImage, path, err)
	}
	c.logger.Debug("decoded image", slog.String("path", path))

	return c.Convert(img)
}
