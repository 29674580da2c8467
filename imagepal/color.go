package imagepal

import "image/color"

// RGB565 is a 16-bit color with 5 bits red, 6 bits green, 5 bits blue.
// This is the wire format the ST7789 family consumes (big-endian on SPI).
type RGB565 uint16

// RGBA converts the RGB565 color to standard 16-bit-per-channel RGBA.
// Channels are expanded by bit replication so full scale maps to 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F

	r8 := (r5 << 3) | (r5 >> 2)
	g8 := (g6 << 2) | (g6 >> 4)
	b8 := (b5 << 3) | (b5 >> 2)

	return r8<<8 | r8, g8<<8 | g8, b8<<8 | b8, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565 by channel truncation.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return New565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// New565 packs 8-bit channels into RGB565 by truncating to 5/6/5 bits.
func New565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// HSV565 converts a hue (degrees, taken mod 360), saturation and value
// (both percentages, clamped to 0-100) to RGB565 using the standard
// six-sector HSV formula.
func HSV565(h, s, v int) RGB565 {
	h %= 360
	if h < 0 {
		h += 360
	}
	if s < 0 {
		s = 0
	} else if s > 100 {
		s = 100
	}
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}

	sf := float32(s) / 100
	vf := float32(v) / 100

	chroma := vf * sf
	sector := float32(h) / 60
	x := chroma * (1 - abs32(mod32(sector, 2)-1))
	m := vf - chroma

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return New565(uint8((r+m)*255), uint8((g+m)*255), uint8((b+m)*255))
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func mod32(f, m float32) float32 {
	for f >= m {
		f -= m
	}
	return f
}
