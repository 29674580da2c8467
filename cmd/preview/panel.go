package main

import (
	"sync"

	"github.com/csboard/st7789p3/imagepal"
)

// simPanel is an in-memory stand-in for the physical panel: an RGB565
// framebuffer behind the same PushRect surface the driver exposes. The
// mutex decouples the renderer from the window's draw loop.
type simPanel struct {
	mu     sync.Mutex
	width  int
	height int
	fb     []imagepal.RGB565
}

func newSimPanel(width, height int) *simPanel {
	return &simPanel{
		width:  width,
		height: height,
		fb:     make([]imagepal.RGB565, width*height),
	}
}

func (p *simPanel) Size() (int, int) { return p.width, p.height }

func (p *simPanel) PushRect(x, y, w, h int, pix []imagepal.RGB565) {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for row := 0; row < h; row++ {
		dy := y + row
		if dy < 0 || dy >= p.height {
			continue
		}
		for col := 0; col < w; col++ {
			dx := x + col
			if dx < 0 || dx >= p.width {
				continue
			}
			p.fb[dy*p.width+dx] = pix[row*w+col]
		}
	}
}

func (p *simPanel) snapshot(dst []imagepal.RGB565) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.fb)
}
