package dehaze

import (
	"fmt"
	"math"
)

// Reconstruct inverts the haze model I = J·t + A·(1-t) for every pixel:
// J = (I - A)/max(t, t0) + A on [0,1] samples, clamped and rescaled to 8
// bits. The output is always RGB; an alpha channel in img is dropped.
func Reconstruct(img *Grid, atmosphere RGB, transmission *Map, t0 float64) (*Grid, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}
	if err := transmission.Validate(); err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}
	if err := matchDimensions("reconstruct", img, transmission); err != nil {
		return nil, err
	}
	if err := validateT0(t0); err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}

	a := [3]float64{normalize(atmosphere.R), normalize(atmosphere.G), normalize(atmosphere.B)}

	out := &Grid{
		Width:    img.Width,
		Height:   img.Height,
		Channels: 3,
		Pix:      make([]uint8, img.Width*img.Height*3),
	}

	for i, tv := range transmission.Values {
		t := math.Max(normalize(tv), t0)
		src := img.Pix[i*img.Channels : i*img.Channels+3]
		dst := out.Pix[i*3 : i*3+3]
		for c := 0; c < 3; c++ {
			j := (normalize(src[c])-a[c])/t + a[c]
			dst[c] = denormalize(j)
		}
	}

	return out, nil
}

func normalize(v uint8) float64 {
	return float64(v) / 255
}

// denormalize clamps f to [0,1] before rescaling; the inversion overshoots.
func denormalize(f float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(f, 0), 1) * 255))
}
