package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// Encode writes img in the named format. An empty format means png.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "", "png":
		err = png.Encode(w, img)
	case "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img to path in the format implied by its extension.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, img, FormatFromPath(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Flush()
}
