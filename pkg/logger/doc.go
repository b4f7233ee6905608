// Package logger provides a structured logging interface for the Facebook page probe.
//
// It wraps the zerolog library to provide a clean, easy-to-use API with support for:
// - Multiple log levels (Debug, Info, Warn, Error, Fatal)
// - Structured logging with fields
// - Pretty console output with colors
// - Optional file output alongside the console
// - Context support for request tracing
// - Global logger instance for easy access
//
// All log output goes to stderr so that stdout stays reserved for the JSON report.
//
// Basic Usage:
//
//	import "fbprobe/pkg/logger"
//
//	// Initialize the global logger
//	cfg := &config.LoggingConfig{
//	    Level: "info",
//	    File: "/var/log/fbprobe.log",
//	}
//	err := logger.Initialize(cfg)
//
//	// Use the global logger
//	logger.Info("Probe started")
//	logger.WithField("page", "PhuketTimeNews").Info("Probing page")
//	logger.WithError(err).Error("Failed to fetch feed")
//
// Advanced Usage:
//
//	// Create a logger instance with fields
//	log := logger.GetLogger().
//	    WithField("component", "probe").
//	    WithField("page", "PhuketTimeNews")
//
//	// Use structured logging
//	log.InfoWithFields("Page probe completed", map[string]interface{}{
//	    "posts": 5,
//	    "multi_image": 2,
//	    "duration": time.Second * 3,
//	})
//
// The logger supports the following configuration options:
// - Level: Log level (debug, info, warn, error, fatal)
// - File: Path to log file (empty for console only)
package logger
