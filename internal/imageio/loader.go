package imageio

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"haze-hunter/internal/dehaze"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded input together with its pixel grid.
type Image struct {
	Source image.Image
	Grid   *dehaze.Grid
	Format string
	Path   string
}

// Decode reads any registered raster format from r.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: decoded image is %dx%d",
			dehaze.ErrInvalidDimensions, bounds.Dx(), bounds.Dy())
	}

	return &Image{
		Source: img,
		Grid:   dehaze.FromImage(img),
		Format: format,
	}, nil
}

func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	img.Path = path
	return img, nil
}

// FormatFromPath maps a file extension to an encoder name, png when the
// extension is unknown.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".tiff", ".tif":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "png"
	}
}
