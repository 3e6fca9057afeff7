package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// DefaultFontSize is the point size used to rasterize ASCII art.
	DefaultFontSize = 10.0
	// DefaultDPI is the resolution used to rasterize ASCII art.
	DefaultDPI = 72.0

	// inkThreshold is the alpha above which a pixel counts as ink (25%).
	inkThreshold = 64
)

// Rasterizer draws lines of monospaced text onto an image. Every glyph is
// placed on a fixed cell grid so the output keeps the art's layout even
// with fonts that are not strictly monospaced.
type Rasterizer struct {
	fontPath string
	fontSize float64
	dpi      float64
	fg, bg   color.Color

	ttf    *truetype.Font
	cellW  int
	cellH  int
	ascent int
}

// RasterizerOption is a functional option for configuring a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithFontFile uses the TrueType font at path instead of Go Mono.
func WithFontFile(path string) RasterizerOption {
	return func(r *Rasterizer) {
		r.fontPath = path
	}
}

// WithFontSize sets the font size in points.
func WithFontSize(size float64) RasterizerOption {
	return func(r *Rasterizer) {
		r.fontSize = size
	}
}

// WithDPI sets the rasterization resolution.
func WithDPI(dpi float64) RasterizerOption {
	return func(r *Rasterizer) {
		r.dpi = dpi
	}
}

// WithColors sets the ink and background colors.
func WithColors(fg, bg color.Color) RasterizerOption {
	return func(r *Rasterizer) {
		r.fg = fg
		r.bg = bg
	}
}

// NewRasterizer loads the font and measures its cell.
// Defaults: Go Mono at 10pt, 72 DPI, black ink on white.
func NewRasterizer(opts ...RasterizerOption) (*Rasterizer, error) {
	r := &Rasterizer{
		fontSize: DefaultFontSize,
		dpi:      DefaultDPI,
		fg:       color.Black,
		bg:       color.White,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.fontSize <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", r.fontSize)
	}
	if r.dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %v", r.dpi)
	}

	ttf, err := loadFont(r.fontPath)
	if err != nil {
		return nil, err
	}
	r.ttf = ttf

	if err := r.measureCell(); err != nil {
		return nil, err
	}
	return r, nil
}

// loadFont parses the TrueType font at path, or Go Mono when path is
// empty.
func loadFont(path string) (*truetype.Font, error) {
	fontBytes := gomono.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return ttf, nil
}

func (r *Rasterizer) newFace() font.Face {
	return truetype.NewFace(r.ttf, &truetype.Options{
		Size:    r.fontSize,
		DPI:     r.dpi,
		Hinting: font.HintingFull,
	})
}

// measureCell derives the cell from the advance of 'A' and the face's
// ascent and descent.
func (r *Rasterizer) measureCell() error {
	face := r.newFace()
	defer face.Close()

	advance, ok := face.GlyphAdvance('A')
	if !ok {
		return fmt.Errorf("font has no glyph for %q", 'A')
	}
	metrics := face.Metrics()

	r.cellW = max(advance.Ceil(), 1)
	r.ascent = metrics.Ascent.Ceil()
	r.cellH = max(r.ascent+metrics.Descent.Ceil(), 1)
	return nil
}

// CellSize returns the width and height in pixels of one glyph cell.
func (r *Rasterizer) CellSize() (int, int) {
	return r.cellW, r.cellH
}

func (r *Rasterizer) newContext(dst draw.Image, src image.Image) *freetype.Context {
	ctx := freetype.NewContext()
	ctx.SetDPI(r.dpi)
	ctx.SetFont(r.ttf)
	ctx.SetFontSize(r.fontSize)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(src)
	ctx.SetHinting(font.HintingFull)
	return ctx
}

// RenderLines draws lines top to bottom onto a new image of
// (longest line x cell width) by (line count x cell height) pixels.
func (r *Rasterizer) RenderLines(lines []string) (*image.RGBA, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no lines to render", ErrEmptyArt)
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	if maxLen == 0 {
		return nil, fmt.Errorf("%w: all %d lines are blank", ErrEmptyArt, len(lines))
	}

	img := image.NewRGBA(image.Rect(0, 0, maxLen*r.cellW, len(lines)*r.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)

	ctx := r.newContext(img, image.NewUniform(r.fg))
	for row, line := range lines {
		baseline := row*r.cellH + r.ascent
		col := 0
		for _, ch := range line {
			if ch != ' ' {
				pt := freetype.Pt(col*r.cellW, baseline)
				if _, err := ctx.DrawString(string(ch), pt); err != nil {
					return nil, fmt.Errorf("drawing %q at row %d col %d: %w", ch, row, col, err)
				}
			}
			col++
		}
	}

	return img, nil
}

// RenderGrid draws a GlyphGrid with [Rasterizer.RenderLines].
func (r *Rasterizer) RenderGrid(grid GlyphGrid) (*image.RGBA, error) {
	return r.RenderLines(grid.Lines())
}

// InkCoverage returns the fraction of a cell covered by glyph ch, counting
// pixels above 25% alpha as ink.
func (r *Rasterizer) InkCoverage(ch rune) (float64, error) {
	cell := image.NewAlpha(image.Rect(0, 0, r.cellW, r.cellH))

	ctx := r.newContext(cell, image.Opaque)
	if _, err := ctx.DrawString(string(ch), freetype.Pt(0, r.ascent)); err != nil {
		return 0, fmt.Errorf("drawing %q: %w", ch, err)
	}

	ink := 0
	for y := 0; y < r.cellH; y++ {
		for x := 0; x < r.cellW; x++ {
			if cell.AlphaAt(x, y).A > inkThreshold {
				ink++
			}
		}
	}
	return float64(ink) / float64(r.cellW*r.cellH), nil
}
