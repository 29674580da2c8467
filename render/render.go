// Package render draws packed palette images onto an RGB565 canvas and
// presents the canvas to a panel.
//
// The renderer has three blit paths: a transparent path that skips palette
// index 0 pixel by pixel, an opaque fast path that materializes whole
// scanlines into a reusable row buffer, and a nearest-neighbor scaled path.
// Presentation pushes the canvas to anything implementing Panel, normally
// an st7789p3.Dev.
//
// A Renderer is single-threaded: its row buffer is not safe for use by two
// goroutines drawing simultaneously.
package render

import "github.com/csboard/st7789p3/imagepal"

// Panel is the capability the renderer needs from a display: its logical
// size and a blocking rectangular pixel push. *st7789p3.Dev implements it.
type Panel interface {
	Size() (width, height int)
	PushRect(x, y, w, h int, pix []imagepal.RGB565)
}

// Canvas is a mutable w x h buffer of RGB565 pixels, the drawing surface
// between blits and panel pushes.
type Canvas struct {
	pix    []imagepal.RGB565
	width  int
	height int
}

// NewCanvas allocates a canvas. Dimensions are clamped to zero.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{pix: make([]imagepal.RGB565, w*h), width: w, height: h}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the backing pixel slice in row-major order.
func (c *Canvas) Pix() []imagepal.RGB565 { return c.pix }

// At returns the pixel at (x, y), or zero when out of bounds.
func (c *Canvas) At(x, y int) imagepal.RGB565 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// DrawPixel writes one pixel. Out-of-bounds writes are silently dropped.
func (c *Canvas) DrawPixel(x, y int, col imagepal.RGB565) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// PushRow bulk-writes a horizontal run of pixels starting at (x, y),
// clipped against the canvas bounds.
func (c *Canvas) PushRow(x, y int, row []imagepal.RGB565) {
	if y < 0 || y >= c.height || x >= c.width {
		return
	}
	if x < 0 {
		if -x >= len(row) {
			return
		}
		row = row[-x:]
		x = 0
	}
	if x+len(row) > c.width {
		row = row[:c.width-x]
	}
	copy(c.pix[y*c.width+x:], row)
}

// Fill paints the whole canvas with one color.
func (c *Canvas) Fill(col imagepal.RGB565) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Renderer blits palette images into a canvas and presents the canvas to a
// panel.
type Renderer struct {
	panel  Panel
	canvas *Canvas
	row    []imagepal.RGB565 // scanline buffer for the opaque fast path
}

// New creates a renderer with its own w x h canvas.
func New(p Panel, w, h int) *Renderer {
	return &Renderer{panel: p, canvas: NewCanvas(w, h)}
}

// NewWithCanvas creates a renderer drawing into a caller-owned canvas.
func NewWithCanvas(p Panel, c *Canvas) *Renderer {
	return &Renderer{panel: p, canvas: c}
}

// Canvas returns the renderer's drawing surface.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Clear fills the canvas with one color.
func (r *Renderer) Clear(col imagepal.RGB565) { r.canvas.Fill(col) }

// Draw blits img onto the canvas at (ox, oy).
//
// With transparent set, pixels with palette index 0 are skipped; every
// other pixel is written individually, which is correct for arbitrary
// overlapping sprites. Without it, the opaque fast path converts one
// scanline at a time into the row buffer and bulk-writes it; every
// source pixel is written, including index 0 with whatever color its
// palette slot holds.
func (r *Renderer) Draw(img *imagepal.Image, ox, oy int, transparent bool) {
	if !transparent {
		r.drawOpaque(img, ox, oy)
		return
	}

	w, h := img.Width(), img.Height()
	pal := img.Palette()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := img.IndexAt(x, y)
			if idx == imagepal.TransparentIndex {
				continue
			}
			r.canvas.DrawPixel(x+ox, y+oy, pal[idx])
		}
	}
}

func (r *Renderer) drawOpaque(img *imagepal.Image, ox, oy int) {
	w, h := img.Width(), img.Height()
	if len(r.row) < w {
		r.row = make([]imagepal.RGB565, w)
	}

	pal := img.Palette()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.row[x] = pal[img.IndexAt(x, y)]
		}
		r.canvas.PushRow(ox, y+oy, r.row[:w])
	}
}

// DrawScaled blits img scaled by (scaleX, scaleY) at (ox, oy) using
// nearest-neighbor sampling. The destination extent is
// floor(w*scaleX) x floor(h*scaleY); the same transparency rule as Draw
// applies per destination pixel.
func (r *Renderer) DrawScaled(img *imagepal.Image, ox, oy int, scaleX, scaleY float64, transparent bool) {
	if scaleX <= 0 || scaleY <= 0 {
		return
	}
	dw := int(float64(img.Width()) * scaleX)
	dh := int(float64(img.Height()) * scaleY)

	pal := img.Palette()
	for sy := 0; sy < dh; sy++ {
		srcY := int(float64(sy) / scaleY)
		for sx := 0; sx < dw; sx++ {
			srcX := int(float64(sx) / scaleX)
			idx := img.IndexAt(srcX, srcY)
			if transparent && idx == imagepal.TransparentIndex {
				continue
			}
			r.canvas.DrawPixel(sx+ox, sy+oy, pal[idx])
		}
	}
}

// Present pushes the whole canvas to the panel at (x, y) as one blocking
// rectangular write.
func (r *Renderer) Present(x, y int) {
	r.panel.PushRect(x, y, r.canvas.width, r.canvas.height, r.canvas.pix)
}

// PresentKeyed pushes the canvas to the panel at (x, y), skipping every
// pixel equal to key. Rows are split into maximal runs of non-key pixels
// and each run is pushed separately, so keyed pixels never reach the
// panel. This is surface-level transparency, independent of the palette
// transparency already resolved while drawing into the canvas.
func (r *Renderer) PresentKeyed(x, y int, key imagepal.RGB565) {
	c := r.canvas
	for row := 0; row < c.height; row++ {
		line := c.pix[row*c.width : (row+1)*c.width]
		col := 0
		for col < c.width {
			if line[col] == key {
				col++
				continue
			}
			start := col
			for col < c.width && line[col] != key {
				col++
			}
			r.panel.PushRect(x+start, y+row, col-start, 1, line[start:col])
		}
	}
}
