package img2ascii

import (
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// GlyphGrid is the quantized form of an image: one glyph per resampled
// pixel, row-major.
type GlyphGrid [][]rune

// Rows returns the number of rows.
func (g GlyphGrid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for an empty grid.
func (g GlyphGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Lines returns each row as a string, without line terminators.
func (g GlyphGrid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

// String serializes the grid with every row terminated by a single "\n".
func (g GlyphGrid) String() string {
	var sb strings.Builder
	sb.Grow(len(g) * (g.Cols() + 1))
	for _, row := range g {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Quantize maps every luminance sample of gray to a palette glyph at
// detail level d. The returned grid has gray's dimensions exactly.
func Quantize(gray *imageutil.GrayImage, d int) (GlyphGrid, error) {
	if err := ValidateDetailLevel(d); err != nil {
		return nil, err
	}

	width, height := gray.Width(), gray.Height()
	grid := make(GlyphGrid, height)
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			row[x] = Glyph(GlyphIndex(gray.Luminance(x, y), d))
		}
		grid[y] = row
	}
	return grid, nil
}
