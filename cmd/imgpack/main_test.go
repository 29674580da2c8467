package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBandPNG writes a w x h PNG of horizontal bands cycling red, green,
// blue every bandRows rows.
func writeBandPNG(t *testing.T, path string, w, h, bandRows int) {
	t.Helper()

	bands := []color.NRGBA{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
	}
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, bands[(y/bandRows)%len(bands)])
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func readAsset(t *testing.T, path string) (width, height int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := decodeAsset(f)
	require.NoError(t, err)
	return img.Width(), img.Height()
}

func TestAppPackCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bin")
	writeBandPNG(t, in, 4, 6, 2)

	require.NoError(t, newApp().Run([]string{"imgpack", "--verbose", "pack", in, out}))

	w, h := readAsset(t, out)
	assert.Equal(t, 4, w)
	assert.Equal(t, 6, h)
}

func TestAppVerboseShortFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bin")
	writeBandPNG(t, in, 2, 2, 1)

	// -v must parse as an alias of --verbose, not as an unknown flag.
	require.NoError(t, newApp().Run([]string{"imgpack", "-v", "pack", in, out}))
}

func TestAppCutCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sheet.png")
	writeBandPNG(t, in, 4, 6, 2)

	require.NoError(t, newApp().Run([]string{"imgpack", "cut", in, "2", "2", "2"}))

	stem := filepath.Join(dir, "sheet")
	for i, rg := range [][2]int{{0, 2}, {2, 4}, {4, 6}} {
		path := cutName(stem+".png", i, rg[0], rg[1])
		w, h := readAsset(t, path)
		assert.Equal(t, 4, w, "strip %d", i)
		assert.Equal(t, 2, h, "strip %d", i)
	}
}

func TestAppInfoCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bin")
	writeBandPNG(t, in, 4, 4, 2)
	require.NoError(t, newApp().Run([]string{"imgpack", "pack", in, out}))

	assert.NoError(t, newApp().Run([]string{"imgpack", "info", out}))
}
