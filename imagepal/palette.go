package imagepal

// TransparentIndex is the palette slot renderers treat as "do not draw".
// This is a convention only: the slot still holds a color and nothing
// prevents assigning it a new one.
const TransparentIndex = 0

// PaletteSize is the number of entries in a Palette.
const PaletteSize = 16

// Palette is a 16-entry RGB565 color table. It is a value type: assigning
// or passing a Palette copies all 16 entries, so there are no aliasing
// hazards when recoloring images per frame.
type Palette [PaletteSize]RGB565

// Classic16 returns the famicom-style default palette.
func Classic16() Palette {
	return Palette{
		0x0000, // transparent (black)
		0xFFFF, // white
		0xF800, // red
		0x07E0, // green
		0x001F, // blue
		0xFFE0, // yellow
		0xF81F, // magenta
		0x07FF, // cyan
		0x8410, // gray
		0xFC00, // orange
		0x8000, // dark red
		0x0400, // dark green
		0x0010, // dark blue
		0x8400, // brown
		0x4208, // dark gray
		0x2104, // very dark
	}
}

// Grayscale16 returns a palette ramping from black to white in 15 steps,
// with index 0 left at black for the transparent sentinel.
func Grayscale16() Palette {
	var p Palette
	for i := 1; i < PaletteSize; i++ {
		level := uint8(i * 255 / (PaletteSize - 1))
		p[i] = New565(level, level, level)
	}
	return p
}

// Sepia16 returns a sepia-toned ramp: lightness i/15 weighted 0.8/0.6/0.4
// across the red/green/blue channels.
func Sepia16() Palette {
	var p Palette
	for i := 1; i < PaletteSize; i++ {
		ratio := float32(i) / (PaletteSize - 1)
		r := uint8(ratio * 255 * 0.8)
		g := uint8(ratio * 255 * 0.6)
		b := uint8(ratio * 255 * 0.4)
		p[i] = New565(r, g, b)
	}
	return p
}

// SetColor assigns a palette entry. Out-of-range indices are ignored.
func (p *Palette) SetColor(index int, c RGB565) {
	if index < 0 || index >= PaletteSize {
		return
	}
	p[index] = c
}
