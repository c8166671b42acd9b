package qrcode

import (
	skip2 "github.com/skip2/go-qrcode"
)

// Skip2Encoder builds matrices with github.com/skip2/go-qrcode at its Highest
// recovery level. Payload bytes are written as-is, without an ECI header.
type Skip2Encoder struct{}

// Encode implements Encoder.
func (Skip2Encoder) Encode(p Payload, width, height int) (Matrix, error) {
	q, err := skip2.New(string(p.Raw), skip2.Highest)
	if err != nil {
		return nil, err
	}
	// Bitmap already carries a 4-module border.
	return renderModules(q.Bitmap(), 0, width, height), nil
}
