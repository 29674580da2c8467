package imagepal

import (
	"image"
	"image/color"
)

// Image is an immutable view over packed 4-bit pixel data bound to a
// palette. The pixel bytes are borrowed from the caller and must outlive
// the view; the palette is an owned copy.
type Image struct {
	pix    []byte
	width  int
	height int
	pal    Palette
}

// New creates an image view over pix with the classic palette. pix holds
// ceil(w*h/2) bytes, two pixels per byte (even pixel in the low nibble).
func New(pix []byte, w, h int) *Image {
	return &Image{pix: pix, width: w, height: h, pal: Classic16()}
}

// NewWithPalette creates an image view over pix bound to a copy of pal.
func NewWithPalette(pix []byte, w, h int, pal Palette) *Image {
	return &Image{pix: pix, width: w, height: h, pal: pal}
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// ColorModel returns RGB565Model. It implements the image.Image interface.
func (m *Image) ColorModel() color.Model { return RGB565Model }

// Bounds returns the image bounds. It implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At returns the palette color of the pixel at (x, y).
// It implements the image.Image interface.
func (m *Image) At(x, y int) color.Color { return m.ColorAt(x, y) }

// IndexAt returns the 4-bit palette index of the pixel at (x, y).
// Any out-of-bounds coordinate, or a pixel whose packed byte lies beyond
// the buffer, resolves to TransparentIndex rather than failing.
func (m *Image) IndexAt(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return TransparentIndex
	}
	p := y*m.width + x
	offset := p / 2
	if offset >= len(m.pix) {
		return TransparentIndex
	}
	if p&1 == 0 {
		return m.pix[offset] & 0x0F
	}
	return m.pix[offset] >> 4
}

// ColorAt returns the RGB565 palette color of the pixel at (x, y).
func (m *Image) ColorAt(x, y int) RGB565 {
	return m.pal[m.IndexAt(x, y)]
}

// Transparent reports whether the pixel at (x, y) is the transparent
// sentinel. Out-of-bounds coordinates are transparent.
func (m *Image) Transparent(x, y int) bool {
	return m.IndexAt(x, y) == TransparentIndex
}

// Palette returns a copy of the image's palette.
func (m *Image) Palette() Palette { return m.pal }

// Pix returns the packed pixel buffer backing this view. The slice is
// shared, not copied.
func (m *Image) Pix() []byte { return m.pix }

// WithPalette returns a new view over the same pixel bytes bound to a copy
// of pal. This is how a single static sprite is recolored per frame.
func (m *Image) WithPalette(pal Palette) *Image {
	return &Image{pix: m.pix, width: m.width, height: m.height, pal: pal}
}

// MemoryFootprint returns the bytes referenced by this view: the packed
// pixel buffer plus the palette. Accounting only, nothing is enforced.
func (m *Image) MemoryFootprint() int {
	return len(m.pix) + PaletteSize*2
}

// Pack builds a packed pixel buffer from one 4-bit index per element of
// indices, which holds w*h values in row-major order. Values are masked
// to 4 bits.
func Pack(indices []uint8, w, h int) []byte {
	pix := make([]byte, (w*h+1)/2)
	for p := 0; p < w*h && p < len(indices); p++ {
		v := indices[p] & 0x0F
		if p&1 == 0 {
			pix[p/2] |= v
		} else {
			pix[p/2] |= v << 4
		}
	}
	return pix
}
