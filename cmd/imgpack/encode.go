package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/csboard/st7789p3/imagepal"
)

// alphaCutoff is the alpha level below which a source pixel becomes the
// transparent index.
const alphaCutoff = 0x80

// assetMagic guards against feeding arbitrary files to the info command.
var assetMagic = [2]byte{'P', '4'}

var errBadAsset = errors.New("imgpack: not a packed asset")

// opaque reports whether the source pixel at (x, y) survives conversion.
func opaque(m image.Image, x, y int) bool {
	_, _, _, a := m.At(x, y).RGBA()
	return a>>8 >= alphaCutoff
}

// convert quantizes a decoded image to at most 15 opaque colors and packs
// it. Index 0 is reserved for pixels under the alpha cutoff; transparent
// pixels carry no weight in the quantizer, so they never skew the palette.
func convert(m image.Image, logger *log.Logger) (*imagepal.Image, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("imgpack: empty image")
	}

	q := quantize.MedianCutQuantizer{
		Weighting: func(m image.Image, x, y int) uint32 {
			if !opaque(m, x, y) {
				return 0
			}
			return 1
		},
	}
	quantized := q.Quantize(make(color.Palette, 0, imagepal.PaletteSize-1), m)
	if len(quantized) == 0 {
		return nil, errors.New("imgpack: image has no opaque pixels")
	}

	var pal imagepal.Palette
	for i, c := range quantized {
		pal[i+1] = imagepal.RGB565Model.Convert(c).(imagepal.RGB565)
	}

	indices := make([]uint8, w*h)
	transparent := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := b.Min.X+x, b.Min.Y+y
			if !opaque(m, sx, sy) {
				transparent++
				continue
			}
			indices[y*w+x] = uint8(quantized.Index(m.At(sx, sy))) + 1
		}
	}

	logger.Printf("imgpack: %dx%d, %d colors, %d transparent pixels",
		w, h, len(quantized), transparent)

	return imagepal.NewWithPalette(imagepal.Pack(indices, w, h), w, h, pal), nil
}

// encodeAsset writes img as a packed asset: a 2-byte magic, width and
// height as big-endian uint16, the 16-entry RGB565 palette big-endian,
// then the packed pixel bytes.
func encodeAsset(w io.Writer, img *imagepal.Image) error {
	if _, err := w.Write(assetMagic[:]); err != nil {
		return err
	}
	for _, v := range []uint16{uint16(img.Width()), uint16(img.Height())} {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	pal := img.Palette()
	for _, c := range pal {
		if err := binary.Write(w, binary.BigEndian, uint16(c)); err != nil {
			return err
		}
	}
	_, err := w.Write(img.Pix())
	return err
}

// decodeAsset reads an asset written by encodeAsset.
func decodeAsset(r io.Reader) (*imagepal.Image, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, errBadAsset
	}
	if magic != assetMagic {
		return nil, errBadAsset
	}

	var w, h uint16
	if err := binary.Read(r, binary.BigEndian, &w); err != nil {
		return nil, errBadAsset
	}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errBadAsset
	}
	if w == 0 || h == 0 {
		return nil, errBadAsset
	}

	var pal imagepal.Palette
	for i := range pal {
		var c uint16
		if err := binary.Read(r, binary.BigEndian, &c); err != nil {
			return nil, errBadAsset
		}
		pal[i] = imagepal.RGB565(c)
	}

	pix := make([]byte, (int(w)*int(h)+1)/2)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, errBadAsset
	}

	return imagepal.NewWithPalette(pix, int(w), int(h), pal), nil
}

// writeGoSource emits img as a compilable Go snippet: a packed pixel
// variable, a palette variable and a constructor call, ready to paste
// into a program that embeds its sprites.
func writeGoSource(w io.Writer, name string, img *imagepal.Image) error {
	fmt.Fprintf(w, "var %sPix = []byte{", name)
	for i, b := range img.Pix() {
		if i%12 == 0 {
			fmt.Fprint(w, "\n\t")
		}
		fmt.Fprintf(w, "0x%02X, ", b)
	}
	fmt.Fprint(w, "\n}\n\n")

	pal := img.Palette()
	fmt.Fprintf(w, "var %sPalette = imagepal.Palette{", name)
	for i, c := range pal {
		if i%8 == 0 {
			fmt.Fprint(w, "\n\t")
		}
		fmt.Fprintf(w, "0x%04X, ", uint16(c))
	}
	fmt.Fprint(w, "\n}\n\n")

	_, err := fmt.Fprintf(w, "var %s = imagepal.NewWithPalette(%sPix, %d, %d, %sPalette)\n",
		name, name, img.Width(), img.Height(), name)
	return err
}
