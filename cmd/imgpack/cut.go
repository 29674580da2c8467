package main

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"
)

// cutRanges computes the [start, end) row ranges the cut command slices a
// sheet into. Values are deduplicated and sorted first. In height mode
// each value is a strip height consumed from the top; in position mode
// the values are absolute Y coordinates with an implicit leading 0.
// Non-positive heights, empty ranges and rows past the image are dropped.
func cutRanges(height int, cuts []int, positions bool) [][2]int {
	unique := append([]int(nil), cuts...)
	sort.Ints(unique)
	n := 0
	for i, v := range unique {
		if i == 0 || v != unique[i-1] {
			unique[n] = v
			n++
		}
	}
	unique = unique[:n]

	var ranges [][2]int
	if positions {
		bounds := append([]int{0}, unique...)
		for i := 0; i < len(bounds)-1; i++ {
			start, end := bounds[i], bounds[i+1]
			if start >= height {
				break
			}
			if end <= start {
				continue
			}
			ranges = append(ranges, [2]int{start, min(end, height)})
		}
		return ranges
	}

	start := 0
	for _, h := range unique {
		if h <= 0 {
			continue
		}
		if start >= height {
			break
		}
		end := min(start+h, height)
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}

// cutName names one strip's output file: stem_cut_index_start_end.bin
// next to the input, mirroring the sheet cutter this replaces.
func cutName(input string, index, start, end int) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_cut_%d_%d_%d.bin", stem, index, start, end)
}

// rowCrop is a view over a horizontal band of another image.
type rowCrop struct {
	image.Image
	rect image.Rectangle
}

func (c rowCrop) Bounds() image.Rectangle { return c.rect }

// cropRows restricts m to rows [start, end) of its bounds.
func cropRows(m image.Image, start, end int) image.Image {
	b := m.Bounds()
	return rowCrop{m, image.Rect(b.Min.X, b.Min.Y+start, b.Max.X, b.Min.Y+end)}
}
