package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

const dataURIPrefix = "data:image/png;base64,"

// EncodePNG serializes img as PNG and returns the complete byte buffer.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// ToBase64 returns the standard (RFC 4648) base64 encoding of img serialized as PNG.
// Encoding starts only after the PNG buffer is complete.
func ToBase64(img image.Image) (string, error) {
	b, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// ToDataURI returns img as a "data:image/png;base64,..." URI suitable for an <img> src attribute.
func ToDataURI(img image.Image) (string, error) {
	s, err := ToBase64(img)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + s, nil
}

// Base64ToFile decodes standard base64 text and writes the raw bytes to path,
// replacing any existing file. Line breaks and other whitespace in the input are
// ignored, as is a leading "data:<mime>;base64," prefix.
// The decoded bytes are not validated as an image.
func Base64ToFile(text, path string) error {
	b, err := decodeBase64(text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, path, err)
	}
	return nil
}

func decodeBase64(text string) ([]byte, error) {
	if strings.HasPrefix(text, "data:") {
		if i := strings.Index(text, ";base64,"); i >= 0 {
			text = text[i+len(";base64,"):]
		}
	}

	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)

	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return b, nil
}
