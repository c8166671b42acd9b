// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (values
// already present in the environment win) and uses the caarlos0/env library for
// parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/qrkit/core/config"
//
//	type QRConfig struct {
//		Charset   string `env:"QR_CHARSET" envDefault:"UTF-8"`
//		Width     int    `env:"QR_WIDTH" envDefault:"150"`
//		Height    int    `env:"QR_HEIGHT" envDefault:"150"`
//		OutputDir string `env:"QR_OUTPUT_DIR,required"`
//	}
//
//	func main() {
//		var cfg QRConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process. Later calls with the
// same type return the cached value even if the environment changed; different
// types are cached independently. Failed loads are not cached.
package config
