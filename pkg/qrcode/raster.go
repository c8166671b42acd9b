package qrcode

import (
	"image"
	"image/color"
)

var (
	darkModule  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	lightModule = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Rasterize renders m as an opaque image, one pixel per matrix cell: black for
// dark modules, white for light ones. The image size is taken from the matrix.
func Rasterize(m Matrix) *image.RGBA {
	width, height := m.Width(), m.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if m.Get(x, y) {
				img.SetRGBA(x, y, darkModule)
			} else {
				img.SetRGBA(x, y, lightModule)
			}
		}
	}
	return img
}
