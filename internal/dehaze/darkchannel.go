package dehaze

import "fmt"

// WindowExtent returns how far a patch reaches ahead of (towards larger
// coordinates) and behind its centre pixel on each axis. For odd sizes the
// two are equal; for even sizes the window leans one sample ahead.
func WindowExtent(patchSize int) (ahead, behind int) {
	ahead = patchSize / 2
	behind = patchSize - 1 - ahead
	return ahead, behind
}

// DarkChannel computes, for every pixel, the minimum of R, G and B over the
// patchSize×patchSize window around it. Samples outside the image are
// skipped, so border pixels see a truncated window.
//
// The window minimum is separable: a column pass followed by a row pass
// yields the same value as scanning the full rectangle.
func DarkChannel(img *Grid, patchSize int) (*Map, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("dark channel: %w", err)
	}
	if err := validatePatchSize(patchSize); err != nil {
		return nil, fmt.Errorf("dark channel: %w", err)
	}

	w, h := img.Width, img.Height
	ahead, behind := WindowExtent(patchSize)

	minRGB := make([]uint8, w*h)
	for i := range minRGB {
		c := img.rgb(i)
		minRGB[i] = min(c.R, c.G, c.B)
	}

	columns := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		y0, y1 := max(0, y-behind), min(h-1, y+ahead)
		for x := 0; x < w; x++ {
			m := uint8(255)
			for yy := y0; yy <= y1; yy++ {
				m = min(m, minRGB[yy*w+x])
			}
			columns[y*w+x] = m
		}
	}

	dark := newMap(w, h)
	for y := 0; y < h; y++ {
		row := columns[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-behind), min(w-1, x+ahead)
			m := uint8(255)
			for _, v := range row[x0 : x1+1] {
				m = min(m, v)
			}
			dark.Values[y*w+x] = m
		}
	}

	return dark, nil
}
