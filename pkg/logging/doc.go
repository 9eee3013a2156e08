// Package logging provides structured logging utilities for itemd components.
//
// It wraps the standard library slog package with service-wide defaults:
// JSON output to stderr, environment-based level configuration (LOG_LEVEL),
// automatic module/version context on every record, and source location
// tracking for debug logs.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("itemd", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("itemd", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug itemd serve
//
// If LOG_LEVEL is not set, the level defaults to INFO.
package logging
