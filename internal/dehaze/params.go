package dehaze

import "math"

const (
	DefaultPatchSize   = 5
	DefaultOmega       = 0.95
	DefaultT0          = 0.1
	DefaultTopFraction = 0.002
)

// Parameters holds the tuning constants of the dark-channel pipeline.
type Parameters struct {
	PatchSize   int     `yaml:"patch_size"`
	Omega       float64 `yaml:"omega"`
	T0          float64 `yaml:"t0"`
	TopFraction float64 `yaml:"top_fraction"`
}

func DefaultParameters() Parameters {
	return Parameters{
		PatchSize:   DefaultPatchSize,
		Omega:       DefaultOmega,
		T0:          DefaultT0,
		TopFraction: DefaultTopFraction,
	}
}

// Validate returns a *ParameterError for the first value outside its domain.
func (p Parameters) Validate() error {
	if err := validatePatchSize(p.PatchSize); err != nil {
		return err
	}
	if err := validateOmega(p.Omega); err != nil {
		return err
	}
	if err := validateT0(p.T0); err != nil {
		return err
	}
	return validateTopFraction(p.TopFraction)
}

func validatePatchSize(patchSize int) error {
	if patchSize < 1 {
		return &ParameterError{Name: "patch_size", Value: patchSize, Reason: "must be at least 1"}
	}
	return nil
}

// omega = 0 is accepted: it disables haze removal (transmission 255 everywhere).
func validateOmega(omega float64) error {
	if math.IsNaN(omega) || omega < 0 || omega > 1 {
		return &ParameterError{Name: "omega", Value: omega, Reason: "must be within [0, 1]"}
	}
	return nil
}

func validateT0(t0 float64) error {
	if math.IsNaN(t0) || t0 <= 0 || t0 >= 1 {
		return &ParameterError{Name: "t0", Value: t0, Reason: "must be within (0, 1)"}
	}
	return nil
}

func validateTopFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return &ParameterError{Name: "top_fraction", Value: fraction, Reason: "must be within (0, 1]"}
	}
	return nil
}
