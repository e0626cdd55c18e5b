package config

// ParameterRange defines the adjustable range of a dehaze parameter.
type ParameterRange struct {
	Min  float64
	Max  float64
	Step float64
}

// ParameterRanges bounds the values the preview exposes. They sit inside
// the validation domains of dehaze.Parameters.
var ParameterRanges = map[string]ParameterRange{
	"patch_size":   {Min: 1, Max: 31, Step: 1},
	"omega":        {Min: 0, Max: 1, Step: 0.01},
	"t0":           {Min: 0.01, Max: 0.99, Step: 0.01},
	"top_fraction": {Min: 0.0005, Max: 0.05, Step: 0.0005},
}
