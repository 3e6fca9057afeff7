package img2ascii_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

func exampleGrid(t *testing.T) img2ascii.GlyphGrid {
	t.Helper()

	grid, err := img2ascii.Quantize(imageutil.GrayFromRows([][]uint8{{0, 255}, {128, 64}}), 10)
	require.NoError(t, err)

	return grid
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    img2ascii.Format
		expectError bool
	}{
		"txt":              {input: "txt", expected: img2ascii.FormatText},
		"png":              {input: "png", expected: img2ascii.FormatPNG},
		"upper case":       {input: "PNG", expected: img2ascii.FormatPNG},
		"padded":           {input: "  txt\n", expected: img2ascii.FormatText},
		"unknown":          {input: "xyz", expected: img2ascii.FormatText, expectError: true},
		"empty":            {input: "", expected: img2ascii.FormatText, expectError: true},
		"extension prefix": {input: ".png", expected: img2ascii.FormatText, expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := img2ascii.ParseFormat(tc.input)
			assert.Equal(t, tc.expected, got)

			if tc.expectError {
				require.ErrorIs(t, err, img2ascii.ErrUnsupportedFormat)
				assert.Contains(t, err.Error(), tc.input)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestFormatStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"txt", "png"}, img2ascii.FormatStrings())
}

func TestDefaultOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ascii_image.txt", img2ascii.DefaultOutputName(img2ascii.FormatText))
	assert.Equal(t, "ascii_image.png", img2ascii.DefaultOutputName(img2ascii.FormatPNG))
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, img2ascii.WriteText(&buf, exampleGrid(t)))

	assert.Equal(t, "@.\n*S\n", buf.String())
}

func TestSaveText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "art.txt")
	require.NoError(t, img2ascii.SaveText(path, exampleGrid(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "@.\n*S\n", string(data))
}

func TestSaveArtifactFormatFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	grid := exampleGrid(t)

	txtFormat, err := img2ascii.ParseFormat("txt")
	require.NoError(t, err)

	xyzFormat, err := img2ascii.ParseFormat("xyz")
	require.ErrorIs(t, err, img2ascii.ErrUnsupportedFormat)

	txtPath := filepath.Join(dir, "a.txt")
	xyzPath := filepath.Join(dir, "b.txt")
	require.NoError(t, img2ascii.SaveArtifact(txtPath, txtFormat, grid, nil))
	require.NoError(t, img2ascii.SaveArtifact(xyzPath, xyzFormat, grid, nil))

	want, err := os.ReadFile(txtPath)
	require.NoError(t, err)

	got, err := os.ReadFile(xyzPath)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestSaveArtifactPNG(t *testing.T) {
	t.Parallel()

	r := newRasterizer(t)
	cellW, cellH := r.CellSize()
	path := filepath.Join(t.TempDir(), "art.png")

	require.NoError(t, img2ascii.SaveArtifact(path, img2ascii.FormatPNG, exampleGrid(t), r))

	img, err := imageutil.LoadImage(path)
	require.NoError(t, err)

	assert.Equal(t, 2*cellW, img.Width())
	assert.Equal(t, 2*cellH, img.Height())
}

func TestSaveArtifactPNGErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := img2ascii.SaveArtifact(filepath.Join(dir, "a.png"), img2ascii.FormatPNG, exampleGrid(t), nil)
	require.Error(t, err)

	path := filepath.Join(dir, "empty.png")
	err = img2ascii.SaveArtifact(path, img2ascii.FormatPNG, nil, newRasterizer(t))
	require.ErrorIs(t, err, img2ascii.ErrEmptyArt)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written for empty art")
}
