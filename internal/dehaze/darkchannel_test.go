package dehaze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowExtent(t *testing.T) {
	tests := []struct {
		patch, ahead, behind int
	}{
		{1, 0, 0},
		{2, 1, 0},
		{3, 1, 1},
		{4, 2, 1},
		{5, 2, 2},
	}
	for _, tt := range tests {
		ahead, behind := WindowExtent(tt.patch)
		assert.Equal(t, tt.ahead, ahead, "patch %d", tt.patch)
		assert.Equal(t, tt.behind, behind, "patch %d", tt.patch)
	}
}

func TestDarkChannelPatchOne(t *testing.T) {
	g := randomGrid(t, 17, 9, 3, 1)

	dark, err := DarkChannel(g, 1)
	require.NoError(t, err)

	for i, v := range dark.Values {
		c := g.rgb(i)
		require.Equal(t, min(c.R, c.G, c.B), v, "pixel %d", i)
	}
}

func TestDarkChannelMatchesFullScan(t *testing.T) {
	for patch := 1; patch <= 8; patch++ {
		t.Run(fmt.Sprintf("patch_%d", patch), func(t *testing.T) {
			g := randomGrid(t, 13, 7, 4, uint64(patch))

			dark, err := DarkChannel(g, patch)
			require.NoError(t, err)
			assert.Equal(t, bruteDarkChannel(g, patch), dark.Values)
		})
	}
}

func TestDarkChannelEvenPatchLeansAhead(t *testing.T) {
	g, err := NewGrid(4, 1, 3)
	require.NoError(t, err)
	values := []uint8{40, 10, 30, 20}
	for i, v := range values {
		g.Pix[i*3], g.Pix[i*3+1], g.Pix[i*3+2] = v, 200, 200
	}

	dark, err := DarkChannel(g, 2)
	require.NoError(t, err)

	// Each pixel sees itself and its right neighbour.
	assert.Equal(t, []uint8{10, 10, 20, 20}, dark.Values)
}

func TestDarkChannelIgnoresAlpha(t *testing.T) {
	g, err := NewGrid(2, 2, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		copy(g.Pix[i*4:], []uint8{90, 80, 70, 0})
	}

	dark, err := DarkChannel(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{70, 70, 70, 70}, dark.Values)
}

func TestDarkChannelUniform(t *testing.T) {
	g := uniformGrid(t, 6, 5, RGB{77, 77, 77})

	dark, err := DarkChannel(g, DefaultPatchSize)
	require.NoError(t, err)
	for _, v := range dark.Values {
		assert.Equal(t, uint8(77), v)
	}
}

func TestDarkChannelErrors(t *testing.T) {
	_, err := DarkChannel(&Grid{Width: 0, Height: 3, Channels: 3}, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = DarkChannel(&Grid{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 5)}, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = DarkChannel(nil, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	g := uniformGrid(t, 2, 2, RGB{1, 2, 3})
	_, err = DarkChannel(g, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "patch_size", perr.Name)
}
