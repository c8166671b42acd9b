package qrcode

import (
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// BarcodeEncoder builds matrices with github.com/boombuler/barcode at level H.
// Payload bytes are written in byte mode without an ECI header.
type BarcodeEncoder struct{}

// Encode implements Encoder.
func (BarcodeEncoder) Encode(p Payload, width, height int) (Matrix, error) {
	code, err := qr.Encode(string(p.Raw), qr.H, qr.Unicode)
	if err != nil {
		return nil, err
	}
	return renderModules(barcodeModules(code), quietZone, width, height), nil
}

// barcodeModules reads the unscaled code, one pixel per module, into a [y][x] grid.
func barcodeModules(code barcode.Barcode) [][]bool {
	b := code.Bounds()
	modules := make([][]bool, b.Dy())
	for y := range modules {
		modules[y] = make([]bool, b.Dx())
		for x := range modules[y] {
			modules[y][x] = isDark(code.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return modules
}

func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}
