package opencv

import (
	"fmt"

	"haze-hunter/internal/dehaze"

	"gocv.io/x/gocv"
)

// GridToMat copies g into a new Mat with the same channel count and order.
// The caller owns the returned Mat.
func GridToMat(g *dehaze.Grid) (gocv.Mat, error) {
	if err := g.Validate(); err != nil {
		return gocv.NewMat(), fmt.Errorf("grid to Mat: %w", err)
	}

	matType := gocv.MatTypeCV8UC3
	if g.Channels == 4 {
		matType = gocv.MatTypeCV8UC4
	}

	// NewMatFromBytes aliases the Go slice; clone so the Mat owns its data.
	view, err := gocv.NewMatFromBytes(g.Height, g.Width, matType, g.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("grid to Mat: %w", err)
	}
	defer view.Close()

	return view.Clone(), nil
}

// MatToGrid copies a 3- or 4-channel 8-bit Mat into a grid.
func MatToGrid(mat gocv.Mat) (*dehaze.Grid, error) {
	if err := ValidateMatForOperation(mat, "Mat to grid"); err != nil {
		return nil, err
	}

	channels := mat.Channels()
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: unsupported channel count: %d", dehaze.ErrInvalidDimensions, channels)
	}

	return &dehaze.Grid{
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: channels,
		Pix:      mat.ToBytes(),
	}, nil
}

// MatToMap copies a single-channel 8-bit Mat into a map.
func MatToMap(mat gocv.Mat) (*dehaze.Map, error) {
	if err := ValidateMatForOperation(mat, "Mat to map"); err != nil {
		return nil, err
	}
	if mat.Channels() != 1 {
		return nil, fmt.Errorf("%w: map needs 1 channel, got %d", dehaze.ErrInvalidDimensions, mat.Channels())
	}

	return &dehaze.Map{
		Width:  mat.Cols(),
		Height: mat.Rows(),
		Values: mat.ToBytes(),
	}, nil
}
