// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers environment-specific presets and a set of nil-safe attribute helpers
// for the build configuration domain.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/chainconfig/core/logger"
//
//	// Create a development logger
//	log := logger.New(
//		logger.WithDevelopment("chainconfig"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	// Create a production logger
//	log := logger.New(logger.WithProduction("chainconfig"))
//
//	log.Info("configuration loaded",
//		logger.Component("buildconfig"),
//		logger.Count("networks", 1),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("chainconfig"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("chainconfig"))
//
//	// Custom configuration
//	level, _ := logger.ParseLevel("warn")
//	customLogger := logger.New(
//		logger.WithLevel(level),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Error("load failed", logger.Error(err))        // no-op attr when err is nil
//	log.Debug("variable read", logger.Variable(name))  // only the name, never the value
//
// Secret values must be passed as secrets.Secret, which renders as
// "[REDACTED]" through slog.LogValuer.
package logger
