package dehaze

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniformGrid(t *testing.T, width, height int, c RGB) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, 3)
	require.NoError(t, err)
	for i := 0; i < width*height; i++ {
		g.Pix[i*3], g.Pix[i*3+1], g.Pix[i*3+2] = c.R, c.G, c.B
	}
	return g
}

func randomGrid(t *testing.T, width, height, channels int, seed uint64) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, channels)
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range g.Pix {
		g.Pix[i] = uint8(r.IntN(256))
	}
	return g
}

// cornerGrid is a 4×4 mid-gray image with a white 2×2 top-left corner.
func cornerGrid(t *testing.T) *Grid {
	t.Helper()
	g := uniformGrid(t, 4, 4, RGB{100, 100, 100})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			o := (y*4 + x) * 3
			g.Pix[o], g.Pix[o+1], g.Pix[o+2] = 255, 255, 255
		}
	}
	return g
}

// bruteDarkChannel scans the full window of every pixel.
func bruteDarkChannel(g *Grid, patchSize int) []uint8 {
	out := make([]uint8, 0, g.Width*g.Height)
	half := patchSize / 2
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			m := uint8(255)
			for yp := 0; yp < patchSize; yp++ {
				sy := y + half - yp
				if sy < 0 || sy >= g.Height {
					continue
				}
				for xp := 0; xp < patchSize; xp++ {
					sx := x + half - xp
					if sx < 0 || sx >= g.Width {
						continue
					}
					c := g.rgb(sy*g.Width + sx)
					m = min(m, c.R, c.G, c.B)
				}
			}
			out = append(out, m)
		}
	}
	return out
}
