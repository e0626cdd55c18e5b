package pipeline

import (
	"fmt"

	"haze-hunter/internal/config"
	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/opencv"
)

// Extractor computes a darkness map. dehaze.DarkChannel and
// opencv.DarkChannel both qualify.
type Extractor func(img *dehaze.Grid, patchSize int) (*dehaze.Map, error)

// ExtractorFor resolves a configured backend name.
func ExtractorFor(backend string) (Extractor, error) {
	switch backend {
	case "", config.BackendNative:
		return dehaze.DarkChannel, nil
	case config.BackendOpenCV:
		return opencv.DarkChannel, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}
