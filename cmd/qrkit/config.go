package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// Config holds demo defaults read from the environment (and .env).
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"qrkit"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Charset   string `env:"QR_CHARSET" envDefault:"UTF-8"`
	Width     int    `env:"QR_WIDTH" envDefault:"150"`
	Height    int    `env:"QR_HEIGHT" envDefault:"150"`
	LogoRatio int    `env:"QR_LOGO_RATIO" envDefault:"5"`
	Encoder   string `env:"QR_ENCODER" envDefault:"zxing"`
	OutputDir string `env:"QR_OUTPUT_DIR" envDefault:"."`
}

// encoder maps the configured backend name to a qrcode.Encoder.
func (c Config) encoder() (qrcode.Encoder, error) {
	switch strings.ToLower(c.Encoder) {
	case "", "zxing":
		return qrcode.ZXingEncoder{}, nil
	case "skip2":
		return qrcode.Skip2Encoder{}, nil
	case "barcode", "boombuler":
		return qrcode.BarcodeEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown encoder %q (want zxing, skip2 or barcode)", c.Encoder)
	}
}

// outputPath returns path, or a fresh qrcode-<uuid>.png under OutputDir when path is empty.
func (c Config) outputPath(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(c.OutputDir, "qrcode-"+uuid.NewString()+".png")
}
