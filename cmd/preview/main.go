// Command preview opens a desktop window that simulates the ST7789P3
// panel, so sprites and animations can be checked without hardware.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/csboard/st7789p3"
	"github.com/csboard/st7789p3/imagepal"
	"github.com/csboard/st7789p3/render"
)

const sceneTicks = 600 // 10s per scene at 60 TPS

type game struct {
	panel *simPanel
	r     *render.Renderer
	walk  *render.Animation
	frame int

	scratch []imagepal.RGB565
	img     *image.RGBA
	tex     *ebiten.Image
}

func newGame(width, height int) *game {
	panel := newSimPanel(width, height)
	g := &game{
		panel:   panel,
		r:       render.New(panel, width, height),
		scratch: make([]imagepal.RGB565, width*height),
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	g.walk = render.NewAnimation([]render.Frame{
		{Image: charStand, Duration: 500 * time.Millisecond},
		{Image: charWalk1, Duration: 300 * time.Millisecond},
		{Image: charStand, Duration: 200 * time.Millisecond},
		{Image: charWalk2, Duration: 300 * time.Millisecond},
	}, true)
	g.walk.Start()

	return g
}

func (g *game) Update() error {
	w, h := g.panel.Size()

	switch (g.frame / sceneTicks) % 2 {
	case 0:
		g.r.Clear(0x0400)
		g.walk.Update()
		if f := g.walk.CurrentFrame(); f != nil {
			g.r.Draw(f.Image, (w-f.Image.Width())/2+f.OffsetX, (h-f.Image.Height())/2+f.OffsetY, true)
		}
	case 1:
		g.r.Clear(0x0000)
		var pal imagepal.Palette
		for i := 1; i < imagepal.PaletteSize; i++ {
			pal.SetColor(i, imagepal.HSV565(g.frame*3+i*24, 80, 90))
		}
		colored := face.WithPalette(pal)
		g.r.Draw(colored, (w-colored.Width())/2, (h-colored.Height())/2, true)
	}

	g.r.Present(0, 0)
	g.frame++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.tex == nil {
		w, h := g.panel.Size()
		g.tex = ebiten.NewImage(w, h)
	}

	g.panel.snapshot(g.scratch)
	dst := g.img.Pix
	for i, c := range g.scratch {
		r, gg, b, _ := c.RGBA()
		j := i * 4
		dst[j+0] = byte(r >> 8)
		dst[j+1] = byte(gg >> 8)
		dst[j+2] = byte(b >> 8)
		dst[j+3] = 0xFF
	}

	g.tex.WritePixels(g.img.Pix)
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.panel.Size()
}

func main() {
	app := cli.NewApp()

	app.Name = "preview"
	app.Usage = "ST7789P3 desktop panel simulator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "rotation",
			Value: 0,
			Usage: "panel rotation (0-3)",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 2,
			Usage: "window scale factor",
		},
	}

	app.Action = func(c *cli.Context) error {
		r := c.Int("rotation")
		if r < 0 || r > 3 {
			return cli.NewExitError(fmt.Errorf("rotation %d out of range", r), 1)
		}

		cfg := st7789p3.DefaultGeometry().Resolve(st7789p3.Rotation(r))

		scale := c.Int("scale")
		if scale < 1 {
			scale = 1
		}

		ebiten.SetWindowTitle(fmt.Sprintf("st7789p3 %dx%d %s", cfg.Width, cfg.Height, cfg.Label))
		ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
		ebiten.SetTPS(60)
		return ebiten.RunGame(newGame(cfg.Width, cfg.Height))
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
