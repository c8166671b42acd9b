package qrcode

import (
	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// quietZone is the light border, in modules, around every rendered code.
// It matches the ZXing writer default.
const quietZone = 4

// Encoder turns a payload into a module matrix at error correction level H,
// scaled to at least width x height.
type Encoder interface {
	Encode(p Payload, width, height int) (Matrix, error)
}

// ZXingEncoder builds matrices with the gozxing port of ZXing. The charset is
// passed as an encoding hint, so non-default charsets get an ECI header.
type ZXingEncoder struct{}

// Encode implements Encoder.
func (ZXingEncoder) Encode(p Payload, width, height int) (Matrix, error) {
	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: decoder.ErrorCorrectionLevel_H,
		gozxing.EncodeHintType_CHARACTER_SET:    p.Charset,
	}

	bm, err := zxqr.NewQRCodeWriter().Encode(p.Text, gozxing.BarcodeFormat_QR_CODE, width, height, hints)
	if err != nil {
		return nil, err
	}
	return bitMatrix{bm}, nil
}

type bitMatrix struct {
	m *gozxing.BitMatrix
}

func (b bitMatrix) Width() int        { return b.m.GetWidth() }
func (b bitMatrix) Height() int       { return b.m.GetHeight() }
func (b bitMatrix) Get(x, y int) bool { return b.m.Get(x, y) }
