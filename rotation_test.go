package st7789p3

import "testing"

func TestResolveReferencePanel(t *testing.T) {
	tests := []struct {
		name string
		r    Rotation
		want RotationConfig
	}{
		{"portrait", Rotation0, RotationConfig{82, 18, 76, 284, 0x00, "portrait"}},
		{"landscape", Rotation90, RotationConfig{18, 82, 284, 76, 0x60, "landscape"}},
		{"portrait flipped", Rotation180, RotationConfig{162, 18, 76, 284, 0xC0, "portrait-flipped"}},
		{"landscape flipped", Rotation270, RotationConfig{18, 162, 284, 76, 0xA0, "landscape-flipped"}},
	}

	g := DefaultGeometry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Resolve(tt.r); got != tt.want {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestResolveReflectionIsComputed(t *testing.T) {
	// The flipped windows are point reflections through the memory
	// center; with an asymmetric origin they differ from the base origin.
	g := DefaultGeometry()

	r0 := g.Resolve(Rotation0)
	r2 := g.Resolve(Rotation180)
	if r2.OffsetX != g.MemoryWidth-r0.OffsetX-r0.Width {
		t.Errorf("Rotation180 OffsetX = %d, want %d", r2.OffsetX, g.MemoryWidth-r0.OffsetX-r0.Width)
	}
	if r2.OffsetY != g.MemoryHeight-r0.OffsetY-r0.Height {
		t.Errorf("Rotation180 OffsetY = %d, want %d", r2.OffsetY, g.MemoryHeight-r0.OffsetY-r0.Height)
	}
	if r2.OffsetX == r0.OffsetX {
		t.Error("Rotation180 window must not reuse the rotation 0 origin")
	}
}

func TestResolveWindowFitsMemory(t *testing.T) {
	g := DefaultGeometry()
	for r := Rotation0; r <= Rotation270; r++ {
		cfg := g.Resolve(r)
		if cfg.OffsetX < 0 || cfg.OffsetX+cfg.Width > g.MemoryWidth {
			t.Errorf("rotation %d: column window %d+%d outside memory width %d",
				r, cfg.OffsetX, cfg.Width, g.MemoryWidth)
		}
		if cfg.OffsetY < 0 || cfg.OffsetY+cfg.Height > g.MemoryHeight {
			t.Errorf("rotation %d: row window %d+%d outside memory height %d",
				r, cfg.OffsetY, cfg.Height, g.MemoryHeight)
		}
	}
}

func TestResolveClampsOutOfRange(t *testing.T) {
	g := DefaultGeometry()
	want := g.Resolve(Rotation0)

	for _, r := range []Rotation{-1, 4, 99, -42} {
		if got := g.Resolve(r); got != want {
			t.Errorf("Resolve(%d) = %+v, want rotation 0 config", r, got)
		}
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		geo     Geometry
		wantErr error
	}{
		{"reference", DefaultGeometry(), nil},
		{"zero width", Geometry{320, 320, 0, 284, 82, 18}, errInvalidSize},
		{"negative height", Geometry{320, 320, 76, -1, 82, 18}, errInvalidSize},
		{"negative offset", Geometry{320, 320, 76, 284, -1, 18}, errInvalidOffset},
		{"column overflow", Geometry{320, 320, 300, 284, 82, 18}, errWindowOverflow},
		{"row overflow", Geometry{320, 320, 76, 310, 82, 18}, errWindowOverflow},
		{"exact fit", Geometry{320, 320, 238, 302, 82, 18}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.geo.validate(); err != tt.wantErr {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
