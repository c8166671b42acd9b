package qrcode

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/dmitrymomot/qrkit/pkg/imgutil"
)

// Scan decodes the QR code in img and returns its text.
func Scan(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	result, err := zxqr.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return result.GetText(), nil
}

// ScanFile opens the image at path and decodes the QR code in it.
func ScanFile(path string) (string, error) {
	img, err := imgutil.Open(path)
	if err != nil {
		return "", err
	}
	return Scan(img)
}
