package qrcode

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Payload is the text handed to an Encoder after charset normalization.
type Payload struct {
	// Text is the payload after a round trip through Charset.
	Text string
	// Raw holds Text encoded in Charset.
	Raw []byte
	// Charset is the MIME-preferred name of the charset.
	Charset string
}

// newPayload encodes text into charset and decodes it back, failing on
// characters the charset cannot represent.
func newPayload(text, charset string) (Payload, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return Payload{}, fmt.Errorf("%w: %w: %q", ErrEncoding, ErrUnsupportedCharset, charset)
	}

	name := charsetName(enc, charset)

	if !utf8.ValidString(text) {
		return Payload{}, fmt.Errorf("%w: payload is not valid UTF-8", ErrEncoding)
	}

	raw, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: payload not representable in %s: %w", ErrEncoding, name, err)
	}

	normalized, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: payload does not decode from %s: %w", ErrEncoding, name, err)
	}

	return Payload{Text: string(normalized), Raw: raw, Charset: name}, nil
}

// charsetName prefers the MIME name ("ISO-8859-1" over "ISO_8859-1:1987"),
// which is what QR writers recognise.
func charsetName(enc encoding.Encoding, fallback string) string {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return fallback
}
