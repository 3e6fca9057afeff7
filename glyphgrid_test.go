package img2ascii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

func TestQuantizeExample(t *testing.T) {
	t.Parallel()

	gray := imageutil.GrayFromRows([][]uint8{
		{0, 255},
		{128, 64},
	})

	grid, err := img2ascii.Quantize(gray, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"@.", "*S"}, grid.Lines())
	assert.Equal(t, "@.\n*S\n", grid.String())
}

func TestQuantizeDimensions(t *testing.T) {
	t.Parallel()

	gray := imageutil.ToGrayscale(imageutil.CreateGradientImage(37, 9))

	for d := img2ascii.MinDetailLevel; d <= img2ascii.MaxDetailLevel; d++ {
		grid, err := img2ascii.Quantize(gray, d)
		require.NoError(t, err)

		require.Equal(t, 9, grid.Rows())
		for _, row := range grid {
			assert.Len(t, row, 37)
		}
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	t.Parallel()

	gray := imageutil.ToGrayscale(imageutil.CreateColorBarsImage(64, 16))

	first, err := img2ascii.Quantize(gray, 7)
	require.NoError(t, err)

	second, err := img2ascii.Quantize(gray, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuantizeGlyphsFromPalette(t *testing.T) {
	t.Parallel()

	gray := imageutil.ToGrayscale(imageutil.CreateGradientImage(256, 2))

	grid, err := img2ascii.Quantize(gray, img2ascii.MaxDetailLevel)
	require.NoError(t, err)

	for _, row := range grid {
		for _, g := range row {
			assert.Contains(t, img2ascii.Palette, string(g))
		}
	}
	assert.Equal(t, '@', grid[0][0])
	assert.Equal(t, '.', grid[0][255])
}

func TestQuantizeInvalidDetailLevel(t *testing.T) {
	t.Parallel()

	gray := imageutil.GrayFromRows([][]uint8{{0}})

	for _, d := range []int{0, img2ascii.PaletteSize + 1} {
		grid, err := img2ascii.Quantize(gray, d)
		require.ErrorIs(t, err, img2ascii.ErrInvalidDetailLevel)
		assert.Nil(t, grid)
	}
}

func TestGlyphGridEmpty(t *testing.T) {
	t.Parallel()

	var grid img2ascii.GlyphGrid

	assert.Equal(t, 0, grid.Rows())
	assert.Equal(t, 0, grid.Cols())
	assert.Empty(t, grid.Lines())
	assert.Empty(t, grid.String())
}
