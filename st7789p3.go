package st7789p3

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/csboard/st7789p3/imagepal"
)

// ST7789 command set (datasheet section 9; only the commands this driver
// issues).
const (
	cmdSWRESET = 0x01 // Software Reset
	cmdSLPOUT  = 0x11 // Sleep Out
	cmdNORON   = 0x13 // Normal Display Mode On
	cmdINVOFF  = 0x20 // Display Inversion Off
	cmdINVON   = 0x21 // Display Inversion On
	cmdDISPOFF = 0x28 // Display Off
	cmdDISPON  = 0x29 // Display On
	cmdCASET   = 0x2A // Column Address Set
	cmdRASET   = 0x2B // Row Address Set
	cmdRAMWR   = 0x2C // Memory Write
	cmdMADCTL  = 0x36 // Memory Data Access Control
	cmdCOLMOD  = 0x3A // Interface Pixel Format

	cmdPORCTRL   = 0xB2 // Porch Setting
	cmdGCTRL     = 0xB7 // Gate Control
	cmdVCOMS     = 0xBB // VCOM Setting
	cmdLCMCTRL   = 0xC0 // LCM Control
	cmdVDVVRHEN  = 0xC2 // VDV and VRH Command Enable
	cmdVRHS      = 0xC3 // VRH Set
	cmdVDVS      = 0xC4 // VDV Set
	cmdFRCTRL2   = 0xC6 // Frame Rate Control in Normal Mode
	cmdPWCTRL1   = 0xD0 // Power Control 1
	cmdPVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	cmdNVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

// colmod16bpp selects 16-bit RGB565 pixels.
const colmod16bpp = 0x05

// Settle delays mandated by the datasheet. resetSettle covers both the
// hardware and software reset recovery time; displaySettle is the minimum
// wait after Sleep Out and Display On before the panel state is stable.
const (
	resetSettle   = 150 * time.Millisecond
	displaySettle = 120 * time.Millisecond
	modeSettle    = 10 * time.Millisecond
)

// calibration is the fixed block of panel tuning registers (porch timing,
// gate control, voltage references, gamma curves) for the ST7789P3 76x284
// glass. The values are rotation-independent and replayed verbatim on
// every initialization.
var calibration = []struct {
	cmd  byte
	data []byte
}{
	{cmdPORCTRL, []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}},
	{cmdGCTRL, []byte{0x35}},
	{cmdVCOMS, []byte{0x19}},
	{cmdLCMCTRL, []byte{0x2C}},
	{cmdVDVVRHEN, []byte{0x01}},
	{cmdVRHS, []byte{0x12}},
	{cmdVDVS, []byte{0x20}},
	{cmdFRCTRL2, []byte{0x0F}},
	{cmdPWCTRL1, []byte{0xA4, 0xA1}},
	{cmdPVGAMCTRL, []byte{0xD0, 0x04, 0x0D, 0x11, 0x13, 0x2B, 0x3F, 0x54, 0x4C, 0x18, 0x0D, 0x0B, 0x1F, 0x23}},
	{cmdNVGAMCTRL, []byte{0xD0, 0x04, 0x0C, 0x11, 0x13, 0x2C, 0x3F, 0x44, 0x51, 0x2F, 0x1F, 0x1F, 0x20, 0x23}},
}

var (
	errInvalidSize    = errors.New("st7789p3: width and height must be positive")
	errInvalidOffset  = errors.New("st7789p3: window offsets must be non-negative")
	errWindowOverflow = errors.New("st7789p3: window does not fit in panel memory")
	errHalted         = errors.New("st7789p3: halted")
)

// Transport is the write-only bus a panel is driven through: ordered
// command/data writes bracketed by an exclusive transaction. The wire
// protocol is fire-and-forget, so no method reports an error; if the
// device is absent or miswired the failure mode is garbage on the glass,
// which this layer cannot observe.
//
// All writes between BeginTransaction and EndTransaction must reach the
// bus in call order; register semantics depend on exact byte sequencing.
type Transport interface {
	BeginTransaction()
	EndTransaction()
	WriteCommand(cmd byte)
	WriteData(data ...byte)
	Delay(d time.Duration)
}

// spiChunk is the largest single Tx the Linux spidev default allows.
const spiChunk = 4096

// spiTransport drives the panel over 4-wire SPI: a shared clock/data pair
// plus a data/command select line. The mutex is the transaction boundary;
// while held, no other writer may touch the bus.
type spiTransport struct {
	mu sync.Mutex
	c  conn.Conn
	dc gpio.PinOut
}

func (t *spiTransport) BeginTransaction() { t.mu.Lock() }
func (t *spiTransport) EndTransaction()   { t.mu.Unlock() }

func (t *spiTransport) WriteCommand(cmd byte) {
	_ = t.dc.Out(gpio.Low)
	_ = t.c.Tx([]byte{cmd}, nil)
}

func (t *spiTransport) WriteData(data ...byte) {
	if len(data) == 0 {
		return
	}
	_ = t.dc.Out(gpio.High)
	for len(data) > 0 {
		n := min(len(data), spiChunk)
		_ = t.c.Tx(data[:n], nil)
		data = data[n:]
	}
}

func (t *spiTransport) Delay(d time.Duration) { time.Sleep(d) }

// Opts is the configuration for the ST7789P3 display.
type Opts struct {
	// Rotation selects the initial orientation. Out-of-range values are
	// clamped to Rotation0 with a log diagnostic.
	Rotation Rotation

	// Geometry overrides the panel geometry. Nil selects the reference
	// 76x284 panel.
	Geometry *Geometry

	// RST is an optional hardware reset pin. When set, initialization
	// pulses it instead of issuing a software reset.
	RST gpio.PinIO

	// Logger receives diagnostics (rotation clamps). Nil discards them.
	Logger *log.Logger
}

// Dev is the device handle for the ST7789P3 display.
type Dev struct {
	t   Transport
	geo Geometry
	log *log.Logger

	rotation Rotation
	cfg      RotationConfig
	rect     image.Rectangle

	// resetPulsed records that a hardware reset already ran, so the first
	// Configure skips the redundant software reset.
	resetPulsed bool
	halted      bool

	txBuf []byte // reusable wire buffer for pixel pushes
}

// NewSPI creates and initializes an ST7789P3 connected via SPI.
//
// The port is configured for 20MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. dc is the data/command select pin and must be an output.
// opts can be nil to use the 76x284 defaults at Rotation0.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	c, err := p.Connect(20*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789p3: %w", err)
	}

	resetPulsed := false
	if opts.RST != nil {
		if err := hardwareReset(opts.RST); err != nil {
			return nil, err
		}
		resetPulsed = true
	}

	return newDev(&spiTransport{c: c, dc: dc}, opts, resetPulsed)
}

// New creates and initializes a display over a caller-supplied Transport.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	return newDev(t, opts, false)
}

func newDev(t Transport, opts *Opts, resetPulsed bool) (*Dev, error) {
	geo := DefaultGeometry()
	if opts.Geometry != nil {
		geo = *opts.Geometry
	}
	if err := geo.validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	d := &Dev{
		t:           t,
		geo:         geo,
		log:         logger,
		resetPulsed: resetPulsed,
	}
	d.Configure(opts.Rotation)
	return d, nil
}

// hardwareReset pulses the reset pin: 200ms low, 200ms high.
func hardwareReset(rst gpio.PinIO) error {
	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7789p3: failed to pull RST low: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7789p3: failed to pull RST high: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	return nil
}

// Configure runs the panel's register initialization program for the given
// rotation as one exclusive bus transaction. It runs once at construction
// and again on every explicit rotation change.
//
// No step can fail observably: the transport is fire-and-forget and the
// panel has no status channel on this bus. The one self-correcting input
// is the rotation, which is clamped to Rotation0 when out of range.
func (d *Dev) Configure(r Rotation) {
	if r < Rotation0 || r > Rotation270 {
		d.log.Printf("st7789p3: rotation %d out of range, clamped to 0", r)
		r = Rotation0
	}
	d.rotation = r
	d.cfg = d.geo.Resolve(r)
	d.rect = image.Rect(0, 0, d.cfg.Width, d.cfg.Height)
	d.halted = false

	t := d.t
	t.BeginTransaction()

	if d.resetPulsed {
		d.resetPulsed = false
	} else {
		t.WriteCommand(cmdSWRESET)
		t.Delay(resetSettle)
	}
	t.WriteCommand(cmdSLPOUT)
	t.Delay(displaySettle)

	t.WriteCommand(cmdMADCTL)
	t.WriteData(d.cfg.MADCTL)
	t.WriteCommand(cmdCOLMOD)
	t.WriteData(colmod16bpp)

	d.setWindow(0, 0, d.cfg.Width-1, d.cfg.Height-1)

	for _, c := range calibration {
		t.WriteCommand(c.cmd)
		t.WriteData(c.data...)
	}

	t.WriteCommand(cmdINVOFF)
	t.Delay(modeSettle)
	t.WriteCommand(cmdNORON)
	t.Delay(modeSettle)
	t.WriteCommand(cmdDISPON)
	t.Delay(displaySettle)

	t.EndTransaction()
}

// setWindow programs the column and row address windows for a rectangle in
// logical panel coordinates. Both bytes of every 16-bit bound are computed
// from the resolved rotation config; nothing is hardcoded to the 76x284
// geometry. Must be called inside a transaction.
func (d *Dev) setWindow(x0, y0, x1, y1 int) {
	cs := uint16(d.cfg.OffsetX + x0)
	ce := uint16(d.cfg.OffsetX + x1)
	rs := uint16(d.cfg.OffsetY + y0)
	re := uint16(d.cfg.OffsetY + y1)

	d.t.WriteCommand(cmdCASET)
	d.t.WriteData(byte(cs>>8), byte(cs), byte(ce>>8), byte(ce))
	d.t.WriteCommand(cmdRASET)
	d.t.WriteData(byte(rs>>8), byte(rs), byte(re>>8), byte(re))
}

// Rotation returns the currently configured rotation.
func (d *Dev) Rotation() Rotation { return d.rotation }

// Bounds returns the logical panel bounds for the current rotation.
func (d *Dev) Bounds() image.Rectangle { return d.rect }

// Size returns the logical panel dimensions for the current rotation.
func (d *Dev) Size() (width, height int) { return d.cfg.Width, d.cfg.Height }

// ColorModel returns the RGB565 color model of the panel.
func (d *Dev) ColorModel() color.Model { return imagepal.RGB565Model }

// PushRect streams a w x h block of pixels to the panel at (x, y) in
// logical coordinates, as one transaction. pix holds w*h colors in
// row-major order. The block is clipped against the panel bounds; bytes
// go out big-endian, two per pixel. The call blocks until the transport
// has accepted every byte.
func (d *Dev) PushRect(x, y, w, h int, pix []imagepal.RGB565) {
	if d.halted || w <= 0 || h <= 0 || len(pix) < w*h {
		return
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, d.cfg.Width), min(y+h, d.cfg.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	cw, ch := x1-x0, y1-y0

	buf := d.wireBuf(cw * ch)
	i := 0
	for row := 0; row < ch; row++ {
		src := pix[(y0-y+row)*w+(x0-x):]
		for col := 0; col < cw; col++ {
			c := src[col]
			buf[i] = byte(c >> 8)
			buf[i+1] = byte(c)
			i += 2
		}
	}

	d.t.BeginTransaction()
	d.setWindow(x0, y0, x1-1, y1-1)
	d.t.WriteCommand(cmdRAMWR)
	d.t.WriteData(buf...)
	d.t.EndTransaction()
}

// Fill paints the whole panel with one color.
func (d *Dev) Fill(c imagepal.RGB565) {
	if d.halted {
		return
	}
	w, h := d.cfg.Width, d.cfg.Height

	buf := d.wireBuf(w * h)
	hi, lo := byte(c>>8), byte(c)
	for i := 0; i < len(buf); i += 2 {
		buf[i] = hi
		buf[i+1] = lo
	}

	d.t.BeginTransaction()
	d.setWindow(0, 0, w-1, h-1)
	d.t.WriteCommand(cmdRAMWR)
	d.t.WriteData(buf...)
	d.t.EndTransaction()
}

// wireBuf returns the reusable wire buffer sized for n pixels.
func (d *Dev) wireBuf(n int) []byte {
	if cap(d.txBuf) < 2*n {
		d.txBuf = make([]byte, 2*n)
	}
	return d.txBuf[:2*n]
}

// Invert enables or disables display color inversion.
func (d *Dev) Invert(on bool) {
	if d.halted {
		return
	}
	cmd := byte(cmdINVOFF)
	if on {
		cmd = cmdINVON
	}
	d.t.BeginTransaction()
	d.t.WriteCommand(cmd)
	d.t.EndTransaction()
}

// Halt turns the display off. The device does not respond to further
// drawing until Configure is called again.
func (d *Dev) Halt() error {
	if d.halted {
		return errHalted
	}
	d.halted = true
	d.t.BeginTransaction()
	d.t.WriteCommand(cmdDISPOFF)
	d.t.EndTransaction()
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789p3.Dev{%dx%d %s}", d.cfg.Width, d.cfg.Height, d.cfg.Label)
}
