// Package imagepal provides a 16-color indexed image format for RGB565 panels.
//
// Pixels are 4-bit palette indices packed two per byte: for the pixel at
// linear offset p = y*width+x, byte p/2 holds it, even p in the low nibble
// and odd p in the high nibble. Palette index 0 is the transparent sentinel
// by convention; renderers skip it, the format itself does not enforce it.
//
// Image is a read-only view over caller-owned pixel bytes plus an owned
// palette copy, so constructing one per frame is cheap and a single static
// sprite can be recolored by swapping palettes with WithPalette.
package imagepal
