package st7789p3

// Rotation selects the panel orientation, in 90° clockwise steps.
type Rotation int

const (
	Rotation0   Rotation = iota // 76x284 portrait
	Rotation90                  // 284x76 landscape
	Rotation180                 // 76x284 portrait, flipped
	Rotation270                 // 284x76 landscape, flipped
)

// MADCTL bits (register 0x36).
const (
	madMY  = 0x80 // row address order
	madMX  = 0x40 // column address order
	madMV  = 0x20 // row/column exchange
	madML  = 0x10 // vertical refresh order
	madBGR = 0x08 // BGR color filter order
	madMH  = 0x04 // horizontal refresh order
)

// Geometry describes how the visible panel sits inside the controller's
// pixel memory. The ST7789P3 76x284 glass occupies a 76x284 window at
// (82, 18) of the controller's 320x320 RAM; the unusual origin is the
// empirically-determined offset that keeps writes clear of the dead rows
// that otherwise show up as random dots along the bottom edge.
type Geometry struct {
	MemoryWidth  int // controller RAM width in pixels
	MemoryHeight int // controller RAM height in pixels
	Width        int // visible panel width at rotation 0
	Height       int // visible panel height at rotation 0
	OffsetX      int // window origin at rotation 0
	OffsetY      int
}

// DefaultGeometry returns the geometry of the reference ST7789P3 76x284
// panel.
func DefaultGeometry() Geometry {
	return Geometry{
		MemoryWidth:  320,
		MemoryHeight: 320,
		Width:        76,
		Height:       284,
		OffsetX:      82,
		OffsetY:      18,
	}
}

func (g Geometry) validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return errInvalidSize
	case g.OffsetX < 0 || g.OffsetY < 0:
		return errInvalidOffset
	case g.OffsetX+g.Width > g.MemoryWidth || g.OffsetY+g.Height > g.MemoryHeight:
		return errWindowOverflow
	}
	return nil
}

// RotationConfig is the resolved addressing window and orientation code for
// one rotation. Both the initialization program and every pixel push derive
// their window bounds from this, so the two can never drift apart.
type RotationConfig struct {
	OffsetX int // window origin in panel memory, pixels
	OffsetY int
	Width   int // logical panel width after rotation
	Height  int
	MADCTL  byte   // orientation code for register 0x36
	Label   string // diagnostic name
}

// Resolve computes the addressing window for a rotation. Out-of-range
// rotations resolve to Rotation0: the device must always end up in a
// well-defined window, so a bad rotation is clamped, not rejected.
func (g Geometry) Resolve(r Rotation) RotationConfig {
	if r < Rotation0 || r > Rotation270 {
		r = Rotation0
	}

	memW, memH := g.MemoryWidth, g.MemoryHeight
	cfg := RotationConfig{
		OffsetX: g.OffsetX,
		OffsetY: g.OffsetY,
		Width:   g.Width,
		Height:  g.Height,
	}

	// 90° and 270° exchange the addressing axes, which swaps both the
	// window and the memory extents it lives in.
	if r == Rotation90 || r == Rotation270 {
		cfg.OffsetX, cfg.OffsetY = cfg.OffsetY, cfg.OffsetX
		cfg.Width, cfg.Height = cfg.Height, cfg.Width
		memW, memH = memH, memW
	}

	// 180° and 270° are point reflections through the memory center.
	// This must be computed from the memory extents: the reflected origin
	// is not the rotation-0 origin.
	if r == Rotation180 || r == Rotation270 {
		cfg.OffsetX = memW - cfg.OffsetX - cfg.Width
		cfg.OffsetY = memH - cfg.OffsetY - cfg.Height
	}

	switch r {
	case Rotation90:
		cfg.MADCTL = madMV | madMX
		cfg.Label = "landscape"
	case Rotation180:
		cfg.MADCTL = madMX | madMY
		cfg.Label = "portrait-flipped"
	case Rotation270:
		cfg.MADCTL = madMV | madMY
		cfg.Label = "landscape-flipped"
	default:
		cfg.MADCTL = 0x00
		cfg.Label = "portrait"
	}

	return cfg
}
