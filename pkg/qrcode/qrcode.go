package qrcode

import (
	"fmt"
	"image"
	"time"

	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/pkg/imgutil"
)

// defaultImageSize is the square size used by Generate and GenerateBase64Image
// when the caller passes a non-positive size.
const defaultImageSize = 256

// Create encodes text as a QR code and renders it as an opaque image.
//
// Defaults: UTF-8 charset, 150x150 pixels, ZXingEncoder. The image is exactly
// the requested size unless the code needs more room, in which case it grows.
func Create(text string, opts ...Option) (*image.RGBA, error) {
	o := applyOptions(opts...)
	return create(text, o)
}

// CreateWithLogo creates a QR code and overlays the image read from logoPath,
// centred and scaled by the configured logo ratio.
// A missing or unreadable logo fails with ErrLogo; the plain code is never returned instead.
func CreateWithLogo(text, logoPath string, opts ...Option) (*image.NRGBA, error) {
	o := applyOptions(opts...)

	qr, err := create(text, o)
	if err != nil {
		return nil, err
	}

	logo, err := imgutil.Open(logoPath)
	if err != nil {
		o.logger.Debug("logo read failed",
			logger.Component("qrcode"),
			logger.Path(logoPath),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w %q: %w", ErrLogo, logoPath, err)
	}

	return composite(qr, logo, o)
}

// CreateWithLogoImage is CreateWithLogo for a logo that is already in memory.
func CreateWithLogoImage(text string, logo image.Image, opts ...Option) (*image.NRGBA, error) {
	o := applyOptions(opts...)

	qr, err := create(text, o)
	if err != nil {
		return nil, err
	}
	return composite(qr, logo, o)
}

// Generate returns a size x size QR code as PNG bytes.
// A non-positive size falls back to 256 pixels.
func Generate(content string, size int, opts ...Option) ([]byte, error) {
	if size <= 0 {
		size = defaultImageSize
	}

	img, err := Create(content, append(opts[:len(opts):len(opts)], WithSize(size, size))...)
	if err != nil {
		return nil, err
	}
	return imgutil.EncodePNG(img)
}

// GenerateBase64Image returns a size x size QR code as a "data:image/png;base64,..." URI.
// A non-positive size falls back to 256 pixels.
func GenerateBase64Image(content string, size int, opts ...Option) (string, error) {
	if size <= 0 {
		size = defaultImageSize
	}

	img, err := Create(content, append(opts[:len(opts):len(opts)], WithSize(size, size))...)
	if err != nil {
		return "", err
	}
	return imgutil.ToDataURI(img)
}

func create(text string, o options) (*image.RGBA, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}

	start := time.Now()

	p, err := newPayload(text, o.charset)
	if err != nil {
		return nil, err
	}

	m, err := o.encoder.Encode(p, o.width, o.height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	img := Rasterize(m)

	o.logger.Debug("qr code generated",
		logger.Component("qrcode"),
		logger.Dimensions(m.Width(), m.Height()),
		logger.Key("charset", p.Charset),
		logger.Elapsed(start),
	)

	return img, nil
}

func composite(qr *image.RGBA, logo image.Image, o options) (*image.NRGBA, error) {
	img, err := Composite(qr, logo, o.logoRatio)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("logo composited",
		logger.Component("qrcode"),
		logger.Count("logo_ratio", o.logoRatio),
	)

	return img, nil
}
