package imgutil

import "errors"

var (
	// ErrOpen indicates an image file could not be read or decoded.
	ErrOpen = errors.New("failed to open image")

	// ErrSave indicates an image or decoded payload could not be written.
	ErrSave = errors.New("failed to save image")

	// ErrUnsupportedFormat indicates the file extension maps to no known image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidBase64 indicates the input is not valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64 input")

	// ErrInvalidDimensions indicates a non-positive target or an empty source image.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrEncode indicates PNG serialization failed.
	ErrEncode = errors.New("failed to encode image")
)
