package widgets

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ImageAreaWidth  = 360
	ImageAreaHeight = 300
)

// ImageDisplay shows the source, transmission map and dehazed result side
// by side.
type ImageDisplay struct {
	container         fyne.CanvasObject
	originalImage     *canvas.Image
	transmissionImage *canvas.Image
	dehazedImage      *canvas.Image
}

func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{
		originalImage:     newImageCanvas(),
		transmissionImage: newImageCanvas(),
		dehazedImage:      newImageCanvas(),
	}
	display.setupLayout()
	return display
}

func newImageCanvas() *canvas.Image {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))
	return img
}

func (id *ImageDisplay) setupLayout() {
	labelled := func(title string, img *canvas.Image) fyne.CanvasObject {
		return container.NewBorder(widget.NewRichTextFromMarkdown("**"+title+"**"), nil, nil, nil, img)
	}

	id.container = container.NewGridWithColumns(3,
		labelled("Original", id.originalImage),
		labelled("Transmission", id.transmissionImage),
		labelled("Dehazed", id.dehazedImage),
	)
}

func (id *ImageDisplay) GetContainer() fyne.CanvasObject {
	return id.container
}

func (id *ImageDisplay) SetOriginalImage(img image.Image) {
	setImage(id.originalImage, img)
}

// SetResult replaces the transmission and dehazed panes.
func (id *ImageDisplay) SetResult(transmission, dehazed image.Image) {
	setImage(id.transmissionImage, transmission)
	setImage(id.dehazedImage, dehazed)
}

func setImage(c *canvas.Image, img image.Image) {
	c.Image = img
	c.Refresh()
}
