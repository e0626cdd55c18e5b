package dehaze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// ParameterError reports a configuration value outside its domain.
type ParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func dimensionsError(operation string, width, height int) error {
	return fmt.Errorf("%w %dx%d for operation: %s", ErrInvalidDimensions, width, height, operation)
}
