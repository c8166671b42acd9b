package qrcode_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/imgutil"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// blank is a matrix with no dark modules.
type blank struct{ w, h int }

func (b blank) Width() int        { return b.w }
func (b blank) Height() int       { return b.h }
func (b blank) Get(x, y int) bool { return false }

func TestComposite(t *testing.T) {
	t.Parallel()

	t.Run("centres logo scaled by ratio", func(t *testing.T) {
		t.Parallel()
		qr := qrcode.Rasterize(blank{100, 100})

		out, err := qrcode.Composite(qr, solid(10, 10, red), 5)
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

		// 100/5 = 20px logo at (50-10, 50-10)
		assert.Equal(t, red, out.NRGBAAt(40, 40))
		assert.Equal(t, red, out.NRGBAAt(59, 59))
		assert.Equal(t, red, out.NRGBAAt(50, 50))

		white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
		assert.Equal(t, white, out.NRGBAAt(39, 39))
		assert.Equal(t, white, out.NRGBAAt(60, 60))
		assert.Equal(t, white, out.NRGBAAt(0, 0))
	})

	t.Run("non-positive ratio defaults to five", func(t *testing.T) {
		t.Parallel()
		qr := qrcode.Rasterize(blank{100, 100})

		withDefault, err := qrcode.Composite(qr, solid(10, 10, red), 0)
		require.NoError(t, err)
		withFive, err := qrcode.Composite(qr, solid(10, 10, red), 5)
		require.NoError(t, err)
		withNegative, err := qrcode.Composite(qr, solid(10, 10, red), -3)
		require.NoError(t, err)

		assert.Equal(t, withFive.Pix, withDefault.Pix)
		assert.Equal(t, withFive.Pix, withNegative.Pix)
	})

	t.Run("transparent logo keeps modules underneath", func(t *testing.T) {
		t.Parallel()
		qr, err := qrcode.Create("hello", qrcode.WithSize(150, 150))
		require.NoError(t, err)

		out, err := qrcode.Composite(qr, solid(8, 8, color.NRGBA{}), 5)
		require.NoError(t, err)

		for y := 0; y < 150; y++ {
			for x := 0; x < 150; x++ {
				q := qr.RGBAAt(x, y)
				require.Equal(t, color.NRGBA{q.R, q.G, q.B, q.A}, out.NRGBAAt(x, y), "pixel %d,%d", x, y)
			}
		}
	})

	t.Run("canvas follows non-square code", func(t *testing.T) {
		t.Parallel()
		qr := qrcode.Rasterize(blank{120, 60})

		out, err := qrcode.Composite(qr, solid(4, 4, red), 4)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 120, 60), out.Bounds())
		// 30x15 logo at (45, 23)
		assert.Equal(t, red, out.NRGBAAt(45, 23))
		assert.Equal(t, red, out.NRGBAAt(74, 37))
		assert.NotEqual(t, red, out.NRGBAAt(44, 23))
		assert.NotEqual(t, red, out.NRGBAAt(75, 37))
	})

	t.Run("does not modify inputs", func(t *testing.T) {
		t.Parallel()
		qr := qrcode.Rasterize(blank{50, 50})
		logo := solid(10, 10, red)
		qrBefore := append([]byte(nil), qr.Pix...)
		logoBefore := append([]byte(nil), logo.Pix...)

		_, err := qrcode.Composite(qr, logo, 5)
		require.NoError(t, err)
		assert.Equal(t, qrBefore, qr.Pix)
		assert.Equal(t, logoBefore, logo.Pix)
	})

	t.Run("rejects ratio that shrinks logo below a pixel", func(t *testing.T) {
		t.Parallel()
		qr := qrcode.Rasterize(blank{10, 10})

		_, err := qrcode.Composite(qr, solid(4, 4, red), 11)
		assert.ErrorIs(t, err, qrcode.ErrInvalidLogoRatio)
	})
}

func TestCreateWithLogo(t *testing.T) {
	t.Parallel()

	t.Run("output size independent of ratio", func(t *testing.T) {
		t.Parallel()
		logoPath := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, imgutil.Save(solid(32, 32, red), logoPath))

		for _, ratio := range []int{0, 2, 3, 5, 8, 10} {
			img, err := qrcode.CreateWithLogo("https://example.com", logoPath,
				qrcode.WithSize(200, 200),
				qrcode.WithLogoRatio(ratio),
			)
			require.NoError(t, err, "ratio %d", ratio)
			assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds(), "ratio %d", ratio)
		}
	})

	t.Run("logo footprint follows ratio", func(t *testing.T) {
		t.Parallel()
		logoPath := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, imgutil.Save(solid(32, 32, red), logoPath))

		countRed := func(img *image.NRGBA) int {
			n := 0
			for y := 0; y < img.Bounds().Dy(); y++ {
				for x := 0; x < img.Bounds().Dx(); x++ {
					if img.NRGBAAt(x, y) == red {
						n++
					}
				}
			}
			return n
		}

		big, err := qrcode.CreateWithLogo("hello", logoPath, qrcode.WithSize(200, 200), qrcode.WithLogoRatio(4))
		require.NoError(t, err)
		small, err := qrcode.CreateWithLogo("hello", logoPath, qrcode.WithSize(200, 200), qrcode.WithLogoRatio(10))
		require.NoError(t, err)

		assert.Equal(t, 50*50, countRed(big))
		assert.Equal(t, 20*20, countRed(small))
	})

	t.Run("in-memory logo matches file logo", func(t *testing.T) {
		t.Parallel()
		logo := solid(16, 16, red)
		logoPath := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, imgutil.Save(logo, logoPath))

		fromFile, err := qrcode.CreateWithLogo("hello", logoPath)
		require.NoError(t, err)
		fromImage, err := qrcode.CreateWithLogoImage("hello", logo)
		require.NoError(t, err)
		assert.Equal(t, fromFile.Pix, fromImage.Pix)
	})

	t.Run("missing logo fails naming the path", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.png")

		img, err := qrcode.CreateWithLogo("hello", missing)
		require.ErrorIs(t, err, qrcode.ErrLogo)
		assert.ErrorIs(t, err, imgutil.ErrOpen)
		assert.Contains(t, err.Error(), missing)
		assert.Nil(t, img)
	})

	t.Run("encoding error wins over logo error", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.CreateWithLogo("", filepath.Join(t.TempDir(), "nope.png"))
		assert.ErrorIs(t, err, qrcode.ErrEncoding)
	})
}
