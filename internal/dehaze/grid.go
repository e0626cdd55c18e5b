package dehaze

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a decoded W×H image with 3 (RGB) or 4 (RGBA) 8-bit samples per
// pixel, stored row-major. Stages read a Grid and never modify it.
type Grid struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height, channels int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, dimensionsError("NewGrid", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: unsupported channel count %d", ErrInvalidDimensions, channels)
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// FromImage copies img into a grid of non-premultiplied samples. Opaque
// images produce 3 channels, everything else 4.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	g := &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var c color.NRGBA
			if nrgba, ok := img.(*image.NRGBA); ok {
				c = nrgba.NRGBAAt(x, y)
			} else {
				c = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			}

			g.Pix[i] = c.R
			g.Pix[i+1] = c.G
			g.Pix[i+2] = c.B
			if channels == 4 {
				g.Pix[i+3] = c.A
			}
			i += channels
		}
	}

	return g
}

// Validate checks the grid shape against its pixel buffer.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return dimensionsError("grid", g.Width, g.Height)
	}
	if g.Channels != 3 && g.Channels != 4 {
		return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidDimensions, g.Channels)
	}
	if len(g.Pix) != g.Width*g.Height*g.Channels {
		return fmt.Errorf("%w: pixel buffer holds %d samples, want %d",
			ErrInvalidDimensions, len(g.Pix), g.Width*g.Height*g.Channels)
	}
	return nil
}

// At returns the RGB samples of the pixel at (x, y).
func (g *Grid) At(x, y int) (RGB, error) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return RGB{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, x, y, g.Width, g.Height)
	}
	return g.rgb(y*g.Width + x), nil
}

func (g *Grid) rgb(index int) RGB {
	o := index * g.Channels
	return RGB{R: g.Pix[o], G: g.Pix[o+1], B: g.Pix[o+2]}
}

// Image converts the grid to an NRGBA image. 3-channel grids are opaque.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Width*g.Height; i++ {
		o := i * g.Channels
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2] = g.Pix[o], g.Pix[o+1], g.Pix[o+2]
		if g.Channels == 4 {
			p[3] = g.Pix[o+3]
		} else {
			p[3] = 0xff
		}
	}
	return img
}

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Intensity is the largest of the three channels.
func (c RGB) Intensity() uint8 {
	return max(c.R, c.G, c.B)
}

// Map is a W×H single-channel 8-bit array indexed by y*Width + x. The
// darkness map and the transmission map are both Maps.
type Map struct {
	Width  int
	Height int
	Values []uint8
}

func newMap(width, height int) *Map {
	return &Map{Width: width, Height: height, Values: make([]uint8, width*height)}
}

// Validate checks the map shape against its value buffer.
func (m *Map) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidDimensions)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return dimensionsError("map", m.Width, m.Height)
	}
	if len(m.Values) != m.Width*m.Height {
		return fmt.Errorf("%w: map holds %d values, want %d",
			ErrInvalidDimensions, len(m.Values), m.Width*m.Height)
	}
	return nil
}

func (m *Map) At(x, y int) (uint8, error) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, x, y, m.Width, m.Height)
	}
	return m.Values[y*m.Width+x], nil
}

// RGB broadcasts the map to three identical channels.
func (m *Map) RGB() *Grid {
	g := &Grid{Width: m.Width, Height: m.Height, Channels: 3, Pix: make([]uint8, len(m.Values)*3)}
	for i, v := range m.Values {
		g.Pix[i*3] = v
		g.Pix[i*3+1] = v
		g.Pix[i*3+2] = v
	}
	return g
}

func (m *Map) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	copy(img.Pix, m.Values)
	return img
}

func matchDimensions(operation string, g *Grid, m *Map) error {
	if g.Width != m.Width || g.Height != m.Height {
		return fmt.Errorf("%w: %s got image %dx%d and map %dx%d",
			ErrInvalidDimensions, operation, g.Width, g.Height, m.Width, m.Height)
	}
	return nil
}
