package imgutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Resize scales src to exactly width x height pixels.
//
// The horizontal and vertical scale factors are derived from the source bounds
// (width/srcWidth and height/srcHeight) and applied as a single affine transform
// with bilinear sampling. Requesting the source size returns a pixel-identical copy.
// The source image is never modified.
func Resize(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, width, height)
	}

	sb := src.Bounds()
	if sb.Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidDimensions)
	}

	if sb.Dx() == width && sb.Dy() == height {
		return imaging.Clone(src), nil
	}

	sx := float64(width) / float64(sb.Dx())
	sy := float64(height) / float64(sb.Dy())

	// Translation moves the source origin to (0,0) so sub-images scale correctly.
	s2d := f64.Aff3{
		sx, 0, -sx * float64(sb.Min.X),
		0, sy, -sy * float64(sb.Min.Y),
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Transform(dst, s2d, src, sb, draw.Src, nil)

	return dst, nil
}

// ResizeFile reads the image at srcPath, scales it to width x height and writes
// the result to destPath, overwriting any existing file. The output format is
// inferred from the destination extension.
func ResizeFile(srcPath, destPath string, width, height int) error {
	if _, err := imaging.FormatFromFilename(destPath); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, destPath)
	}

	src, err := Open(srcPath)
	if err != nil {
		return err
	}

	dst, err := Resize(src, width, height)
	if err != nil {
		return err
	}

	return Save(dst, destPath)
}
