package metrics

import (
	"fmt"

	"haze-hunter/internal/dehaze"

	"gonum.org/v1/gonum/stat"
)

// Report summarises a dehazing run.
type Report struct {
	MeanTransmission   float64 // normalised to [0,1]
	StdDevTransmission float64
	InputContrast      float64 // luminance standard deviation, [0,1] scale
	OutputContrast     float64
	ContrastGain       float64 // OutputContrast / InputContrast; 0 for flat input
	ClippedFraction    float64 // output samples at exactly 0 or 255
}

// Fields flattens the report for structured logging.
func (r Report) Fields() map[string]interface{} {
	return map[string]interface{}{
		"mean_transmission":   r.MeanTransmission,
		"stddev_transmission": r.StdDevTransmission,
		"input_contrast":      r.InputContrast,
		"output_contrast":     r.OutputContrast,
		"contrast_gain":       r.ContrastGain,
		"clipped_fraction":    r.ClippedFraction,
	}
}

// Compute measures transmission statistics and the luminance contrast of
// input and output.
func Compute(input, output *dehaze.Grid, transmission *dehaze.Map) (Report, error) {
	for _, g := range []*dehaze.Grid{input, output} {
		if err := g.Validate(); err != nil {
			return Report{}, fmt.Errorf("metrics: %w", err)
		}
	}
	if err := transmission.Validate(); err != nil {
		return Report{}, fmt.Errorf("metrics: %w", err)
	}
	if input.Width != output.Width || input.Height != output.Height ||
		input.Width != transmission.Width || input.Height != transmission.Height {
		return Report{}, fmt.Errorf("%w: metrics need equal-sized inputs", dehaze.ErrInvalidDimensions)
	}

	t := make([]float64, len(transmission.Values))
	for i, v := range transmission.Values {
		t[i] = float64(v) / 255
	}

	var r Report
	r.MeanTransmission, r.StdDevTransmission = stat.PopMeanStdDev(t, nil)

	_, r.InputContrast = stat.PopMeanStdDev(luminance(input), nil)
	_, r.OutputContrast = stat.PopMeanStdDev(luminance(output), nil)
	if r.InputContrast > 0 {
		r.ContrastGain = r.OutputContrast / r.InputContrast
	}

	clipped := 0
	samples := 0
	for i := 0; i < output.Width*output.Height; i++ {
		for _, v := range output.Pix[i*output.Channels : i*output.Channels+3] {
			if v == 0 || v == 255 {
				clipped++
			}
			samples++
		}
	}
	r.ClippedFraction = float64(clipped) / float64(samples)

	return r, nil
}

// luminance uses Rec. 601 weights on [0,1] samples.
func luminance(g *dehaze.Grid) []float64 {
	out := make([]float64, g.Width*g.Height)
	for i := range out {
		p := g.Pix[i*g.Channels:]
		out[i] = (0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2])) / 255
	}
	return out
}
