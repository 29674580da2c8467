package main

import "github.com/csboard/st7789p3/imagepal"

// mustSprite builds a packed image from one row string per scanline, one
// hex digit per pixel.
func mustSprite(w, h int, rows []string) *imagepal.Image {
	indices := make([]uint8, w*h)
	for y, row := range rows {
		for x, r := range row {
			var v uint8
			switch {
			case r >= '0' && r <= '9':
				v = uint8(r - '0')
			case r >= 'a' && r <= 'f':
				v = uint8(r-'a') + 10
			default:
				panic("sprite: bad digit " + string(r))
			}
			indices[y*w+x] = v
		}
	}
	return imagepal.New(imagepal.Pack(indices, w, h), w, h)
}

var face = mustSprite(16, 16, []string{
	"0000000000000000",
	"0000111111110000",
	"0011111111111100",
	"0011112211221100",
	"0011111111111100",
	"0011331111113300",
	"0011113333331100",
	"0000111111110000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
	"0000000000000000",
})

var charStand = mustSprite(12, 16, []string{
	"000033330000",
	"000333333000",
	"000344443000",
	"000342243000",
	"000344443000",
	"000334433000",
	"000666666000",
	"006666666600",
	"006666666600",
	"006666666600",
	"000666666000",
	"000066660000",
	"000077770000",
	"000077770000",
	"000077770000",
	"000777777000",
})

var charWalk1 = mustSprite(12, 16, []string{
	"000033330000",
	"000333333000",
	"000344443000",
	"000342243000",
	"000344443000",
	"000334433000",
	"000666666000",
	"006666666600",
	"006666666600",
	"006666666600",
	"000666666000",
	"000766660000",
	"000777770000",
	"000777007700",
	"000777007700",
	"007777077770",
})

var charWalk2 = mustSprite(12, 16, []string{
	"000033330000",
	"000333333000",
	"000344443000",
	"000342243000",
	"000344443000",
	"000334433000",
	"000666666000",
	"006666666600",
	"006666666600",
	"006666666600",
	"000666666000",
	"000066667000",
	"000077777000",
	"007700777000",
	"007700777000",
	"077770777700",
})
