package imgutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Open reads and decodes the image at path. The format is detected from the
// file content, not the extension.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	return img, nil
}

// Save writes img to path in the format implied by the file extension
// (png, jpg/jpeg, gif, tif/tiff, bmp). Existing files are overwritten.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, path, err)
	}
	return nil
}
