// Package st7789p3 controls ST7789P3-driven 76x284 bar LCD panels via SPI.
//
// The ST7789P3 is a 16-bit color (RGB565) LCD controller with 320x320
// pixels of internal RAM. The 76x284 bar-type glass maps to a window at
// (82, 18) of that RAM; writing anywhere else lights the dead rows around
// the glass and shows up as random dots, so every addressing window this
// driver programs is derived from that offset.
//
// # Hardware Connection
//
// Connect the panel to your system via 4-wire SPI (Mode0, MSB first):
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/csboard/st7789p3"
//		"github.com/csboard/st7789p3/imagepal"
//		"github.com/csboard/st7789p3/render"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiPort, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO21")
//
//		dev, _ := st7789p3.NewSPI(spiPort, dcPin, &st7789p3.Opts{
//			Rotation: st7789p3.Rotation0,
//		})
//		defer dev.Halt()
//
//		// Full-screen renderer; draw a sprite and present it.
//		r := render.New(dev, 76, 284)
//		r.Clear(0x0010)
//		r.Draw(imagepal.New(spritePix, 8, 8), 34, 138, true)
//		r.Present(0, 0)
//	}
//
// # Rotation
//
// Four rotations are supported; each resolves to its own addressing window
// and MADCTL orientation code. The 180° and 270° windows are point
// reflections of the 0°/90° windows through the RAM center, not a simple
// offset reuse. Changing rotation replays the full initialization program:
//
//	dev.Configure(st7789p3.Rotation90) // now 284x76
//
// # Error Model
//
// The bus is write-only: after construction, nothing the panel does is
// observable from the host, so drawing calls return nothing and bad input
// degrades silently (out-of-range rotations clamp to 0, off-panel pushes
// clip). Failures are purely visual. Pass Opts.Logger to see diagnostics.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7789.pdf
package st7789p3
