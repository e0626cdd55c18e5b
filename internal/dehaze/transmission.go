package dehaze

import (
	"fmt"
	"math"
)

// BuildTransmission maps every darkness value d to 255 - floor(d·omega).
// omega below 1 keeps a little haze in the reconstruction.
func BuildTransmission(dark *Map, omega float64) (*Map, error) {
	if err := dark.Validate(); err != nil {
		return nil, fmt.Errorf("transmission map: %w", err)
	}
	if err := validateOmega(omega); err != nil {
		return nil, fmt.Errorf("transmission map: %w", err)
	}

	t := newMap(dark.Width, dark.Height)
	for i, d := range dark.Values {
		t.Values[i] = 255 - uint8(math.Floor(float64(d)*omega))
	}
	return t, nil
}
