// Package imgutil provides small image helpers used by the QR code generator:
// affine image scaling, file open/save with the format inferred from the file
// extension, and PNG/base64 conversion.
//
// All functions are stateless and safe to call concurrently on different inputs.
//
// # Resizing
//
// Resize scales an image to an exact target size. Horizontal and vertical
// factors are computed independently from the source bounds, so the aspect
// ratio is not preserved when the caller asks for a non-proportional size:
//
//	thumb, err := imgutil.Resize(src, 64, 64)
//	if err != nil {
//		return err
//	}
//
// ResizeFile does the same for files on disk. The output format is taken from
// the destination extension:
//
//	err := imgutil.ResizeFile("logo.jpg", "logo-small.png", 32, 32)
//
// # Base64
//
// ToBase64 serializes the image as PNG before encoding, so a failed PNG write
// never yields a truncated base64 string:
//
//	encoded, err := imgutil.ToBase64(img)
//
//	// Later, write the bytes back to disk
//	err = imgutil.Base64ToFile(encoded, "qrcode.png")
//
// ToDataURI wraps the same payload for direct use in an <img> src attribute.
//
// # Errors
//
// Every failure is wrapped with one of the package sentinels, so callers can
// branch with errors.Is:
//
//	if errors.Is(err, imgutil.ErrOpen) {
//		// source file missing or unreadable
//	}
package imgutil
