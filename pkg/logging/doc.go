// Package logging provides structured logging utilities for the OMX store
// components.
//
// It wraps the standard library slog package with store-specific defaults:
// JSON output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context injection, and source location tracking for debug
// logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("omxstored", version)
//
//	    slog.Info("store loaded", "instance", "platform", "roles", 42)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (debug, info, warn,
// error); INFO is the default.
package logging
