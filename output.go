package img2ascii

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Format is an output artifact format.
type Format string

const (
	// FormatText writes the art as UTF-8 text, one row per line.
	FormatText Format = "txt"
	// FormatPNG rasterizes the art and writes a PNG image.
	FormatPNG Format = "png"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatPNG}
}

// FormatStrings returns [Formats] as strings, for flag help and
// completions.
func FormatStrings() []string {
	formats := Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ParseFormat parses an output format name, case-insensitively. Unknown
// names yield FormatText together with an error wrapping
// [ErrUnsupportedFormat]; the returned format is always usable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatPNG:
		return f, nil
	}
	return FormatText, fmt.Errorf("%w: %q, falling back to %s", ErrUnsupportedFormat, s, FormatText)
}

// DefaultOutputName returns the file name used when no output path is
// given.
func DefaultOutputName(f Format) string {
	return "ascii_image." + string(f)
}

// WriteText writes the grid to w verbatim.
func WriteText(w io.Writer, grid GlyphGrid) error {
	_, err := io.WriteString(w, grid.String())
	return err
}

// SaveText writes the grid to a UTF-8 text file at path.
func SaveText(path string, grid GlyphGrid) error {
	if err := os.WriteFile(path, []byte(grid.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

// SavePNG rasterizes the grid and writes it as a PNG file at path.
func SavePNG(path string, grid GlyphGrid, r *Rasterizer) error {
	img, err := r.RenderGrid(grid)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(img, path)
}

// SaveArtifact writes the grid in format f to path. The rasterizer is only
// used for FormatPNG and may be nil otherwise.
func SaveArtifact(path string, f Format, grid GlyphGrid, r *Rasterizer) error {
	switch f {
	case FormatPNG:
		if r == nil {
			return fmt.Errorf("%s output needs a rasterizer", FormatPNG)
		}
		return SavePNG(path, grid, r)
	default:
		return SaveText(path, grid)
	}
}
