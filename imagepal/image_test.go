package imagepal

import (
	"image"
	"testing"
)

func TestNibblePacking(t *testing.T) {
	// One row of four pixels 5, 10, 3, 12: even pixel in the low nibble.
	pix := Pack([]uint8{5, 10, 3, 12}, 4, 1)

	if pix[0] != 0xA5 {
		t.Errorf("pix[0] = 0x%02X, want 0xA5", pix[0])
	}
	if pix[1] != 0xC3 {
		t.Errorf("pix[1] = 0x%02X, want 0xC3", pix[1])
	}
}

func TestPackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"8x8", 8, 8},
		{"odd width", 5, 3},
		{"single row", 7, 1},
		{"single column", 1, 9},
		{"single pixel", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices := make([]uint8, tt.w*tt.h)
			for i := range indices {
				indices[i] = uint8((i*7 + 3) % 16)
			}

			m := New(Pack(indices, tt.w, tt.h), tt.w, tt.h)

			if want := (tt.w*tt.h + 1) / 2; m.MemoryFootprint() != want+PaletteSize*2 {
				t.Errorf("MemoryFootprint() = %d, want %d", m.MemoryFootprint(), want+PaletteSize*2)
			}

			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					if got := m.IndexAt(x, y); got != indices[y*tt.w+x] {
						t.Errorf("IndexAt(%d, %d) = %d, want %d", x, y, got, indices[y*tt.w+x])
					}
				}
			}
		})
	}
}

func TestPackMasksTo4Bits(t *testing.T) {
	m := New(Pack([]uint8{0xF5, 0x1A}, 2, 1), 2, 1)
	if got := m.IndexAt(0, 0); got != 0x5 {
		t.Errorf("IndexAt(0, 0) = 0x%X, want 0x5", got)
	}
	if got := m.IndexAt(1, 0); got != 0xA {
		t.Errorf("IndexAt(1, 0) = 0x%X, want 0xA", got)
	}
}

func TestOutOfBoundsIsTransparent(t *testing.T) {
	m := New(Pack([]uint8{1, 2, 3, 4}, 2, 2), 2, 2)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}, {-5, -5},
	}
	for _, c := range coords {
		if got := m.IndexAt(c.x, c.y); got != TransparentIndex {
			t.Errorf("IndexAt(%d, %d) = %d, want %d", c.x, c.y, got, TransparentIndex)
		}
		if !m.Transparent(c.x, c.y) {
			t.Errorf("Transparent(%d, %d) = false, want true", c.x, c.y)
		}
	}
}

func TestShortBufferIsTransparent(t *testing.T) {
	// 4x4 image backed by only 2 of its 8 bytes: pixels past the buffer
	// resolve to the transparent index instead of faulting.
	m := New([]byte{0x21, 0x43}, 4, 4)

	if got := m.IndexAt(0, 0); got != 1 {
		t.Errorf("IndexAt(0, 0) = %d, want 1", got)
	}
	if got := m.IndexAt(0, 2); got != TransparentIndex {
		t.Errorf("IndexAt(0, 2) = %d, want transparent", got)
	}
}

func TestColorAt(t *testing.T) {
	pal := Classic16()
	m := NewWithPalette(Pack([]uint8{0, 2, 4, 1}, 2, 2), 2, 2, pal)

	if got := m.ColorAt(1, 0); got != pal[2] {
		t.Errorf("ColorAt(1, 0) = 0x%04X, want 0x%04X", got, pal[2])
	}
	// Out of bounds resolves to the palette's index 0 color.
	if got := m.ColorAt(-1, -1); got != pal[0] {
		t.Errorf("ColorAt(-1, -1) = 0x%04X, want 0x%04X", got, pal[0])
	}
}

func TestWithPalette(t *testing.T) {
	m := New(Pack([]uint8{2, 2, 2, 2}, 2, 2), 2, 2)
	gray := Grayscale16()

	recolored := m.WithPalette(gray)

	if recolored.ColorAt(0, 0) != gray[2] {
		t.Errorf("recolored ColorAt(0, 0) = 0x%04X, want 0x%04X", recolored.ColorAt(0, 0), gray[2])
	}
	// The original view keeps its palette and both share pixel data.
	if m.ColorAt(0, 0) != Classic16()[2] {
		t.Error("WithPalette modified the original view")
	}
	if recolored.IndexAt(1, 1) != m.IndexAt(1, 1) {
		t.Error("WithPalette did not preserve pixel data")
	}
}

func TestImageInterface(t *testing.T) {
	m := New(Pack([]uint8{1, 0, 0, 1}, 2, 2), 2, 2)

	var _ image.Image = m

	if m.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,2)", m.Bounds())
	}
	if m.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
	c, ok := m.At(0, 0).(RGB565)
	if !ok {
		t.Fatalf("At(0, 0) returned %T, want RGB565", m.At(0, 0))
	}
	if c != Classic16()[1] {
		t.Errorf("At(0, 0) = 0x%04X, want 0x%04X", c, Classic16()[1])
	}
}
