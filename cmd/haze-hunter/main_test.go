package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/imageio"
	"haze-hunter/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHazyPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(100)
			if x < 2 && y < 2 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	path := filepath.Join(dir, "hazy.png")
	require.NoError(t, imageio.Save(path, img))
	return path
}

func TestRunDehazeWritesBothImages(t *testing.T) {
	dir := t.TempDir()
	input := writeHazyPNG(t, dir)

	params := dehaze.Parameters{PatchSize: 3, Omega: 0.95, T0: 0.1, TopFraction: 0.25}
	coordinator, err := pipeline.NewCoordinator(params)
	require.NoError(t, err)

	var out bytes.Buffer
	tPath := filepath.Join(dir, "t.png")
	oPath := filepath.Join(dir, "o.png")
	require.NoError(t, runDehaze(context.Background(), &out, coordinator, input, tPath, oPath))

	assert.Contains(t, out.String(), "Loading image... ")
	assert.Contains(t, out.String(), "Calculating dark channel... ")
	assert.Contains(t, out.String(), "Using atmospheric value: (255, 255, 255)")
	assert.Contains(t, out.String(), "Outputting reconstruction... ")

	tImg, err := imageio.Load(tPath)
	require.NoError(t, err)
	c, err := tImg.Grid.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, dehaze.RGB{R: 13, G: 13, B: 13}, c)

	oImg, err := imageio.Load(oPath)
	require.NoError(t, err)
	c, err = oImg.Grid.At(3, 3)
	require.NoError(t, err)
	assert.Equal(t, dehaze.RGB{R: 8, G: 8, B: 8}, c)
}

func TestRunCommandFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeHazyPNG(t, dir)
	configPath := filepath.Join(dir, "haze.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dehaze:\n  patch_size: 3\n  top_fraction: 0.5\n"), 0o644))

	oPath := filepath.Join(dir, "clear.png")
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"run", input,
		"--config", configPath,
		"--top-fraction", "0.25",
		"--log-level", "error",
		"--transmission", filepath.Join(dir, "t.png"),
		"-o", oPath,
	})

	require.NoError(t, root.Execute())
	assert.FileExists(t, oPath)
	assert.Contains(t, out.String(), "(255, 255, 255)")
}

func TestRunCommandRejectsInvalidParameters(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"run", "missing.png", "--t0", "1.5"})

	err := root.Execute()
	assert.ErrorIs(t, err, dehaze.ErrInvalidParameter)
}
