package dehaze

// Output bundles every intermediate product of Dehaze.
type Output struct {
	Dark         *Map
	Atmosphere   RGB
	Transmission *Map
	Radiance     *Grid
}

// Dehaze runs the four stages sequentially with p.
func Dehaze(img *Grid, p Parameters) (*Output, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dark, err := DarkChannel(img, p.PatchSize)
	if err != nil {
		return nil, err
	}

	atmosphere, err := EstimateAtmosphericLight(dark, img, p.TopFraction)
	if err != nil {
		return nil, err
	}

	transmission, err := BuildTransmission(dark, p.Omega)
	if err != nil {
		return nil, err
	}

	radiance, err := Reconstruct(img, atmosphere, transmission, p.T0)
	if err != nil {
		return nil, err
	}

	return &Output{
		Dark:         dark,
		Atmosphere:   atmosphere,
		Transmission: transmission,
		Radiance:     radiance,
	}, nil
}
