// Package logger provides structured logging built on Go's standard slog package:
// a small factory with functional options and attribute helpers used across qrkit.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/qrkit/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("qrkit"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("qrkit"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//		logger.WithAttr(slog.String("service", "qrkit")),
//	)
//
//	logger.SetAsDefault(log)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil errors and empty strings, which slog
// drops, so they can be passed unconditionally:
//
//	log.Error("resize failed",
//		logger.Component("imgutil"),
//		logger.Path(src),
//		logger.Dimensions(width, height),
//		logger.Error(err),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
