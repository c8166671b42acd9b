// Package qrcode generates QR code images with optional centred logos.
//
// Every generated code uses the highest error correction level (H, ~30% of the
// symbol can be damaged or covered and still decode), which is what makes logo
// overlays safe. Images are rendered with opaque black and white modules.
//
// # Usage
//
// Generate an image with the default 150x150 size and UTF-8 charset:
//
//	img, err := qrcode.Create("https://example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Override size and charset:
//
//	img, err := qrcode.Create("Grüße",
//		qrcode.WithSize(300, 300),
//		qrcode.WithCharset("ISO-8859-1"),
//	)
//
// Put a logo in the middle. The logo is scaled to 1/ratio of each dimension
// (1/5 by default) and drawn over the code with source-over blending, so
// transparent logo pixels keep the modules underneath:
//
//	img, err := qrcode.CreateWithLogo("https://example.com", "logo.png",
//		qrcode.WithSize(400, 400),
//		qrcode.WithLogoRatio(4),
//	)
//
// Generate raw PNG bytes or a data URI for HTML:
//
//	pngBytes, err := qrcode.Generate("https://example.com", 256)
//
//	dataURI, err := qrcode.GenerateBase64Image("https://example.com", 256)
//	fmt.Printf(`<img src="%s" alt="QR Code">`, dataURI)
//
// # Encoders
//
// The module matrix comes from a pluggable Encoder. ZXingEncoder is the default
// and honours the configured charset through an ECI header. Skip2Encoder and
// BarcodeEncoder encode the charset-encoded bytes without an ECI header:
//
//	img, err := qrcode.Create("hello", qrcode.WithEncoder(qrcode.Skip2Encoder{}))
//
// Whatever the backend, the image size is taken from the returned matrix. When
// the requested size is smaller than the code needs, the matrix (and the image)
// grows to fit.
//
// # Charset
//
// The payload is encoded into the configured charset and decoded back before
// the matrix is built. Characters the charset cannot represent fail fast with
// ErrEncoding instead of being silently replaced.
//
// # Scanning
//
// Scan and ScanFile decode a QR code image back to text:
//
//	text, err := qrcode.ScanFile("qrcode.png")
//
// # Errors
//
// Encoding failures wrap ErrEncoding, unreadable logos wrap ErrLogo and name the
// path. There is no fallback: a failed logo never yields the plain code.
package qrcode
