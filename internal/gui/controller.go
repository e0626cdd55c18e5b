package gui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/imageio"
	"haze-hunter/internal/pipeline"

	"fyne.io/fyne/v2"
)

const component = "Controller"

// Controller re-runs the pipeline whenever the parameters change. A new run
// cancels the one in flight.
type Controller struct {
	view      *View
	source    *imageio.Image
	extractor pipeline.Extractor
	logger    pipeline.Logger

	mu            sync.Mutex
	processCancel context.CancelFunc
	generation    uint64
	radiance      image.Image
}

func NewController(view *View, source *imageio.Image, extractor pipeline.Extractor, logger pipeline.Logger) *Controller {
	c := &Controller{
		view:      view,
		source:    source,
		extractor: extractor,
		logger:    logger,
	}
	view.SetController(c)
	return c
}

// Process starts a run with params. It returns immediately.
func (c *Controller) Process(params dehaze.Parameters) {
	coordinator, err := pipeline.NewCoordinator(params,
		pipeline.WithExtractor(c.extractor),
		pipeline.WithLogger(c.logger),
	)
	if err != nil {
		c.handleError(err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	if c.processCancel != nil {
		c.processCancel()
	}
	c.processCancel = cancel
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	c.view.SetStatus("Processing…")

	go func() {
		defer cancel()

		result, err := coordinator.Run(ctx, c.source.Grid)
		if errors.Is(err, context.Canceled) {
			return
		}

		fyne.Do(func() {
			if !c.isCurrent(generation) {
				return
			}
			if err != nil {
				c.handleError(err)
				return
			}

			radiance := result.RadianceImage()
			c.mu.Lock()
			c.radiance = radiance
			c.mu.Unlock()

			c.view.SetResult(result.TransmissionImage(), radiance, result.Atmosphere, result.Metrics, result.Total)
		})
	}()
}

func (c *Controller) isCurrent(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == generation
}

// SaveResult asks for a destination and encodes the latest dehazed image.
func (c *Controller) SaveResult() {
	c.mu.Lock()
	radiance := c.radiance
	c.mu.Unlock()

	if radiance == nil {
		c.handleError(fmt.Errorf("no dehazed image to save"))
		return
	}

	c.view.ShowSaveDialog(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			c.handleError(err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		format := imageio.FormatFromPath(strings.ToLower(writer.URI().Name()))
		if err := imageio.Encode(writer, radiance, format); err != nil {
			c.handleError(err)
			return
		}

		c.logger.Info(component, "image saved", map[string]interface{}{
			"uri":    writer.URI().String(),
			"format": format,
		})
		c.view.SetStatus("Saved " + writer.URI().Name())
	})
}

// Shutdown cancels any run in flight.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processCancel != nil {
		c.processCancel()
		c.processCancel = nil
	}
}

func (c *Controller) handleError(err error) {
	c.logger.Error(component, err, nil)
	c.view.SetStatus("Error")
	c.view.ShowError(err)
}
