package gui

import (
	"fmt"
	"path/filepath"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/imageio"
	"haze-hunter/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName = "Haze Hunter"
	AppID   = "com.imageprocessing.haze-hunter"
)

// Run opens the preview window for source and blocks until it closes.
func Run(source *imageio.Image, params dehaze.Parameters, extractor pipeline.Extractor, logger pipeline.Logger) error {
	if source == nil || source.Grid == nil {
		return fmt.Errorf("no image to preview")
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(fmt.Sprintf("%s - %s", AppName, filepath.Base(source.Path)))
	window.Resize(fyne.NewSize(1280, 560))

	view := NewView(window, params)
	controller := NewController(view, source, extractor, logger)
	window.SetOnClosed(controller.Shutdown)

	window.SetContent(view.GetMainContainer())
	view.SetOriginalImage(source.Source)

	logger.Info(component, "preview started", map[string]interface{}{
		"width":  source.Grid.Width,
		"height": source.Grid.Height,
		"format": source.Format,
	})

	controller.Process(params)
	window.ShowAndRun()
	return nil
}
