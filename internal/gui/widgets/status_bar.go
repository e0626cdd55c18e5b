package widgets

import (
	"fmt"
	"time"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/metrics"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container       *fyne.Container
	statusLabel     *widget.Label
	atmosphereLabel *widget.Label
	contrastLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	atmosphereLabel := widget.NewLabel("Atmosphere: --")
	contrastLabel := widget.NewLabel("Contrast: --")

	metricsContainer := container.NewHBox(
		atmosphereLabel,
		widget.NewSeparator(),
		contrastLabel,
	)

	return &StatusBar{
		container:       container.NewBorder(nil, nil, statusLabel, metricsContainer),
		statusLabel:     statusLabel,
		atmosphereLabel: atmosphereLabel,
		contrastLabel:   contrastLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetResult(atmosphere dehaze.RGB, report metrics.Report, elapsed time.Duration) {
	sb.statusLabel.SetText(fmt.Sprintf("Done in %s", elapsed.Round(time.Millisecond)))
	sb.atmosphereLabel.SetText("Atmosphere: " + atmosphere.String())
	sb.contrastLabel.SetText(fmt.Sprintf("Contrast: %.3f → %.3f (×%.2f)",
		report.InputContrast, report.OutputContrast, report.ContrastGain))
}
