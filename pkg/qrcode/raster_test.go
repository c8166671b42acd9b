package qrcode_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// grid is a [y][x] matrix for tests.
type grid [][]bool

func (g grid) Width() int        { return len(g[0]) }
func (g grid) Height() int       { return len(g) }
func (g grid) Get(x, y int) bool { return g[y][x] }

func TestRasterize(t *testing.T) {
	t.Parallel()

	m := grid{
		{true, false, false},
		{false, true, false},
	}

	img := qrcode.Rasterize(m)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	black := color.RGBA{0, 0, 0, 0xff}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}

	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(1, 0))
	assert.Equal(t, white, img.RGBAAt(2, 0))
	assert.Equal(t, white, img.RGBAAt(0, 1))
	assert.Equal(t, black, img.RGBAAt(1, 1))
	assert.Equal(t, white, img.RGBAAt(2, 1))
	assert.True(t, img.Opaque())

	again := qrcode.Rasterize(m)
	assert.Equal(t, img.Pix, again.Pix)
}
