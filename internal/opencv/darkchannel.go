package opencv

import (
	"fmt"
	"image"

	"haze-hunter/internal/dehaze"

	"gocv.io/x/gocv"
)

// DarkChannel computes the same map as dehaze.DarkChannel with OpenCV: the
// per-pixel channel minimum is eroded with a rectangular kernel. The anchor
// sits at the window's trailing extent so even patch sizes lean ahead like
// the native extractor, and the constant border takes erode's default
// border value, which never wins a minimum.
func DarkChannel(g *dehaze.Grid, patchSize int) (*dehaze.Map, error) {
	if patchSize < 1 {
		return nil, fmt.Errorf("opencv dark channel: %w",
			&dehaze.ParameterError{Name: "patch_size", Value: patchSize, Reason: "must be at least 1"})
	}

	src, err := GridToMat(g)
	if err != nil {
		return nil, fmt.Errorf("opencv dark channel: %w", err)
	}
	defer src.Close()

	channels := gocv.Split(src)
	defer func() {
		for _, c := range channels {
			c.Close()
		}
	}()

	minRGB := gocv.NewMat()
	defer minRGB.Close()
	gocv.Min(channels[0], channels[1], &minRGB)
	gocv.Min(minRGB, channels[2], &minRGB)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: patchSize, Y: patchSize})
	defer kernel.Close()

	_, behind := dehaze.WindowExtent(patchSize)

	dark := gocv.NewMat()
	defer dark.Close()
	gocv.ErodeWithParams(minRGB, &dark, kernel, image.Point{X: behind, Y: behind}, 1, gocv.BorderConstant)

	return MatToMap(dark)
}
