package gui

import (
	"image"
	"time"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/gui/widgets"
	"haze-hunter/internal/metrics"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// View handles all UI components and their layout
type View struct {
	window     fyne.Window
	controller *Controller

	imageDisplay   *widgets.ImageDisplay
	parameterPanel *widgets.ParameterPanel
	statusBar      *widgets.StatusBar
	saveButton     *widget.Button
	mainContainer  *fyne.Container
}

func NewView(window fyne.Window, params dehaze.Parameters) *View {
	view := &View{
		window:         window,
		imageDisplay:   widgets.NewImageDisplay(),
		parameterPanel: widgets.NewParameterPanel(params),
		statusBar:      widgets.NewStatusBar(),
	}
	view.saveButton = widget.NewButton("Save Dehazed…", nil)
	view.saveButton.Disable()

	view.mainContainer = container.NewBorder(
		nil,
		view.statusBar.GetContainer(),
		nil,
		container.NewVBox(view.parameterPanel.GetContainer(), view.saveButton),
		view.imageDisplay.GetContainer(),
	)
	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.parameterPanel.SetParameterChangeHandler(controller.Process)
	v.saveButton.OnTapped = controller.SaveResult
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) SetOriginalImage(img image.Image) {
	v.imageDisplay.SetOriginalImage(img)
}

func (v *View) SetResult(transmission, dehazed image.Image, atmosphere dehaze.RGB, report metrics.Report, elapsed time.Duration) {
	v.imageDisplay.SetResult(transmission, dehazed)
	v.statusBar.SetResult(atmosphere, report, elapsed)
	v.saveButton.Enable()
}

func (v *View) SetStatus(status string) {
	v.statusBar.SetStatus(status)
}

func (v *View) ShowError(err error) {
	dialog.ShowError(err, v.window)
}

func (v *View) ShowSaveDialog(callback func(fyne.URIWriteCloser, error)) {
	dialog.ShowFileSave(callback, v.window)
}
