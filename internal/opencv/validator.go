package opencv

import (
	"fmt"

	"haze-hunter/internal/dehaze"

	"gocv.io/x/gocv"
)

// ValidateMatForOperation rejects empty Mats and Mats that are not 8-bit.
func ValidateMatForOperation(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("%w: Mat is empty for operation: %s", dehaze.ErrInvalidDimensions, operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("%w: Mat has dimensions %dx%d for operation: %s",
			dehaze.ErrInvalidDimensions, mat.Cols(), mat.Rows(), operation)
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return nil
	default:
		return fmt.Errorf("unsupported Mat type %v for operation: %s", mat.Type(), operation)
	}
}
