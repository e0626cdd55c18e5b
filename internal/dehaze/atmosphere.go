package dehaze

import (
	"fmt"
	"math"
	"sort"
)

// DefaultAtmosphericLight is returned when no candidate pixel is selected,
// which happens when round(N·topFraction) is 0.
var DefaultAtmosphericLight = RGB{R: 255, G: 255, B: 255}

// EstimateAtmosphericLight picks the ambient light colour. Pixels are ranked
// by dark-channel value (highest first, ties kept in index order) and the
// first round(N·topFraction) become candidates. Among those, the pixel with
// the strictly greatest max(R,G,B) wins; the first one seen keeps a tie. The
// running maximum starts at 0, so an all-black candidate set yields
// DefaultAtmosphericLight.
func EstimateAtmosphericLight(dark *Map, img *Grid, topFraction float64) (RGB, error) {
	if err := dark.Validate(); err != nil {
		return RGB{}, fmt.Errorf("atmospheric light: %w", err)
	}
	if err := img.Validate(); err != nil {
		return RGB{}, fmt.Errorf("atmospheric light: %w", err)
	}
	if err := matchDimensions("atmospheric light", img, dark); err != nil {
		return RGB{}, err
	}
	if err := validateTopFraction(topFraction); err != nil {
		return RGB{}, fmt.Errorf("atmospheric light: %w", err)
	}

	n := len(dark.Values)
	count := int(math.Round(float64(n) * topFraction))
	if count == 0 {
		return DefaultAtmosphericLight, nil
	}

	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return dark.Values[candidates[a]] > dark.Values[candidates[b]]
	})

	best := DefaultAtmosphericLight
	var bestIntensity uint8
	for _, i := range candidates[:count] {
		c := img.rgb(i)
		if intensity := c.Intensity(); intensity > bestIntensity {
			bestIntensity = intensity
			best = c
		}
	}

	return best, nil
}
