package widgets

import (
	"fmt"
	"sync"

	"haze-hunter/internal/config"
	"haze-hunter/internal/dehaze"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ParameterPanel exposes the dehaze parameters as sliders. The change
// handler fires once a drag ends, with the full parameter set.
type ParameterPanel struct {
	container              *fyne.Container
	mu                     sync.RWMutex
	params                 dehaze.Parameters
	sliders                map[string]*widget.Slider
	parameterChangeHandler func(dehaze.Parameters)
}

func NewParameterPanel(initial dehaze.Parameters) *ParameterPanel {
	panel := &ParameterPanel{
		params:  initial,
		sliders: make(map[string]*widget.Slider),
	}
	panel.setupPanel()
	return panel
}

func (pp *ParameterPanel) setupPanel() {
	pp.container = container.NewVBox(
		widget.NewLabel("Parameters:"),
		pp.slider("patch_size", "Patch Size", float64(pp.params.PatchSize), "%.0f",
			func(p *dehaze.Parameters, v float64) { p.PatchSize = int(v) }),
		pp.slider("omega", "Omega", pp.params.Omega, "%.2f",
			func(p *dehaze.Parameters, v float64) { p.Omega = v }),
		pp.slider("t0", "Minimum Transmission", pp.params.T0, "%.2f",
			func(p *dehaze.Parameters, v float64) { p.T0 = v }),
		pp.slider("top_fraction", "Atmosphere Fraction", pp.params.TopFraction, "%.4f",
			func(p *dehaze.Parameters, v float64) { p.TopFraction = v }),
	)
}

func (pp *ParameterPanel) slider(name, title string, value float64, format string, apply func(*dehaze.Parameters, float64)) fyne.CanvasObject {
	r := config.ParameterRanges[name]

	label := widget.NewLabel(fmt.Sprintf("%s: "+format, title, value))
	s := widget.NewSlider(r.Min, r.Max)
	s.Step = r.Step
	s.SetValue(value)

	s.OnChanged = func(v float64) {
		label.SetText(fmt.Sprintf("%s: "+format, title, v))
		pp.mu.Lock()
		apply(&pp.params, v)
		pp.mu.Unlock()
	}
	s.OnChangeEnded = func(float64) {
		pp.notify()
	}

	pp.sliders[name] = s
	return container.NewVBox(label, s)
}

func (pp *ParameterPanel) notify() {
	pp.mu.RLock()
	handler := pp.parameterChangeHandler
	params := pp.params
	pp.mu.RUnlock()

	if handler != nil {
		handler(params)
	}
}

func (pp *ParameterPanel) GetContainer() *fyne.Container {
	return pp.container
}

func (pp *ParameterPanel) SetParameterChangeHandler(handler func(dehaze.Parameters)) {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	pp.parameterChangeHandler = handler
}

// Parameters returns the values currently shown.
func (pp *ParameterPanel) Parameters() dehaze.Parameters {
	pp.mu.RLock()
	defer pp.mu.RUnlock()
	return pp.params
}

// Slider returns the slider bound to a parameter name, nil if unknown.
func (pp *ParameterPanel) Slider(name string) *widget.Slider {
	return pp.sliders[name]
}
