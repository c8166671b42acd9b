package qrcode

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/dmitrymomot/qrkit/pkg/imgutil"
)

// Composite draws logo centred over qr and returns the combined image.
//
// The logo is scaled to (width/ratio, height/ratio) of the code and blended
// source-over at full opacity, so its own alpha channel is respected. A ratio
// <= 0 means DefaultLogoRatio. The canvas has the same width and height as qr.
// Neither input is modified.
func Composite(qr, logo image.Image, ratio int) (*image.NRGBA, error) {
	if ratio <= 0 {
		ratio = DefaultLogoRatio
	}

	b := qr.Bounds()
	width, height := b.Dx(), b.Dy()
	logoWidth, logoHeight := width/ratio, height/ratio
	if logoWidth < 1 || logoHeight < 1 {
		return nil, fmt.Errorf("%w: ratio %d on %dx%d", ErrInvalidLogoRatio, ratio, width, height)
	}

	scaled, err := imgutil.Resize(logo, logoWidth, logoHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComposite, err)
	}

	canvas := imaging.New(width, height, color.Transparent)
	canvas = imaging.Paste(canvas, qr, image.Pt(0, 0))

	pos := image.Pt(width/2-logoWidth/2, height/2-logoHeight/2)
	return imaging.Overlay(canvas, scaled, pos, 1.0), nil
}
