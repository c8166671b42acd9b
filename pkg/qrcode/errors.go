package qrcode

import "errors"

var (
	// ErrEncoding indicates the payload could not be turned into a QR matrix:
	// too long for the error correction level, unrepresentable in the charset,
	// or rejected by the backend.
	ErrEncoding = errors.New("qr generation failed")

	// ErrUnsupportedCharset indicates the charset name is unknown. Always
	// returned together with ErrEncoding.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("invalid qr code size")

	// ErrLogo indicates the logo image could not be read.
	ErrLogo = errors.New("failed to read logo")

	// ErrInvalidLogoRatio indicates the logo would be scaled below one pixel.
	ErrInvalidLogoRatio = errors.New("logo ratio too large for image size")

	// ErrComposite indicates the logo could not be drawn over the code.
	ErrComposite = errors.New("failed to composite logo")

	// ErrNotFound indicates no QR code could be decoded from an image.
	ErrNotFound = errors.New("no qr code found")
)
