package imagepal

import "testing"

func TestClassic16(t *testing.T) {
	p := Classic16()

	if p[TransparentIndex] != 0x0000 {
		t.Errorf("classic palette index 0 = 0x%04X, want 0x0000", p[0])
	}
	if p[1] != 0xFFFF {
		t.Errorf("classic palette index 1 = 0x%04X, want 0xFFFF", p[1])
	}
	if p[2] != 0xF800 {
		t.Errorf("classic palette index 2 = 0x%04X, want 0xF800", p[2])
	}
	if p[15] != 0x2104 {
		t.Errorf("classic palette index 15 = 0x%04X, want 0x2104", p[15])
	}
}

func TestGrayscale16(t *testing.T) {
	p := Grayscale16()

	if p[0] != 0x0000 {
		t.Errorf("grayscale index 0 = 0x%04X, want 0x0000", p[0])
	}
	if p[15] != 0xFFFF {
		t.Errorf("grayscale index 15 = 0x%04X, want 0xFFFF", p[15])
	}
	// Levels must be non-decreasing.
	for i := 1; i < PaletteSize; i++ {
		if p[i] < p[i-1] {
			t.Errorf("grayscale levels not monotonic at %d: 0x%04X < 0x%04X", i, p[i], p[i-1])
		}
	}
	// Level formula: i*255/15.
	if want := New565(17, 17, 17); p[1] != want {
		t.Errorf("grayscale index 1 = 0x%04X, want 0x%04X", p[1], want)
	}
}

func TestSepia16(t *testing.T) {
	p := Sepia16()

	if p[0] != 0x0000 {
		t.Errorf("sepia index 0 = 0x%04X, want 0x0000", p[0])
	}
	// Full lightness weighted 0.8/0.6/0.4.
	if want := New565(204, 153, 102); p[15] != want {
		t.Errorf("sepia index 15 = 0x%04X, want 0x%04X", p[15], want)
	}
	// Red must dominate green must dominate blue at every level.
	for i := 1; i < PaletteSize; i++ {
		r, g, b, _ := p[i].RGBA()
		if r < g || g < b {
			t.Errorf("sepia index %d channels not ordered: r=%x g=%x b=%x", i, r, g, b)
		}
	}
}

func TestSetColor(t *testing.T) {
	p := Classic16()

	p.SetColor(3, 0xABCD)
	if p[3] != 0xABCD {
		t.Errorf("SetColor(3) not applied: 0x%04X", p[3])
	}

	// Out-of-range indices are silently ignored.
	before := p
	p.SetColor(16, 0x1111)
	p.SetColor(-1, 0x1111)
	if p != before {
		t.Error("out-of-range SetColor modified the palette")
	}

	// Index 0 is assignable: the transparent sentinel is a convention,
	// not a structural guarantee.
	p.SetColor(0, 0xF800)
	if p[0] != 0xF800 {
		t.Errorf("SetColor(0) not applied: 0x%04X", p[0])
	}
}

func TestPaletteIsValueType(t *testing.T) {
	a := Classic16()
	b := a
	b.SetColor(5, 0x0001)
	if a[5] == b[5] {
		t.Error("palette copy aliases the original")
	}
}
