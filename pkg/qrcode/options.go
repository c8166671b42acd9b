package qrcode

import "log/slog"

const (
	// DefaultCharset is the payload charset when none is configured.
	DefaultCharset = "UTF-8"

	// DefaultWidth and DefaultHeight are the image size when none is configured.
	DefaultWidth  = 150
	DefaultHeight = 150

	// DefaultLogoRatio makes the logo 1/5 of each image dimension.
	DefaultLogoRatio = 5
)

// Option configures a single generation call.
type Option func(*options)

type options struct {
	charset   string
	width     int
	height    int
	logoRatio int
	encoder   Encoder
	logger    *slog.Logger
}

// WithCharset sets the IANA charset the payload is encoded in (e.g. "UTF-8", "ISO-8859-1", "Shift_JIS").
func WithCharset(charset string) Option {
	return func(o *options) {
		o.charset = charset
	}
}

// WithSize sets the requested image width and height in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithLogoRatio sets the logo scale divisor. Values <= 0 fall back to DefaultLogoRatio.
func WithLogoRatio(ratio int) Option {
	return func(o *options) {
		o.logoRatio = ratio
	}
}

// WithEncoder replaces the module matrix backend.
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		if e != nil {
			o.encoder = e
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts ...Option) options {
	o := options{
		charset:   DefaultCharset,
		width:     DefaultWidth,
		height:    DefaultHeight,
		logoRatio: DefaultLogoRatio,
		encoder:   ZXingEncoder{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logoRatio <= 0 {
		o.logoRatio = DefaultLogoRatio
	}
	return o
}
