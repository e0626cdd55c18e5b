package imageio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(100 * y), B: 7, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeLossless(t *testing.T) {
	for _, format := range []string{"png", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, testImage(), format))

			img, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, img.Format)
			assert.Equal(t, 3, img.Grid.Width)
			assert.Equal(t, 2, img.Grid.Height)

			c, err := img.Grid.At(2, 1)
			require.NoError(t, err)
			assert.Equal(t, uint8(80), c.R)
			assert.Equal(t, uint8(100), c.G)
			assert.Equal(t, uint8(7), c.B)
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), "jpeg"))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Format)
	assert.Equal(t, 3, img.Grid.Channels)
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, testImage(), "xcf"))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(path, testImage()))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, img.Path)
	assert.Equal(t, "png", img.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.JPG":     "jpeg",
		"a.jpeg":    "jpeg",
		"b.tif":     "tiff",
		"c.bmp":     "bmp",
		"d.png":     "png",
		"no_ext":    "png",
		"e.unknown": "png",
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}
