// Package logging provides structured logging utilities for nagcfg.
//
// # Overview
//
// This package wraps the standard library slog package with nagcfg defaults.
// It supports environment-based log level configuration, module/version
// context injection and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("nagcfg", "v1.0.0", "")
//	    slog.Info("rendering", "os_family", "RedHat")
//	}
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug nagcfg render -p params.yaml
//
// All logs are written to stderr in JSON format so rendered artifacts on
// stdout stay clean:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"rendered","module":"nagcfg","version":"v1.0.0"}
//
// The resolver, renderers and schema are pure and never log; only the CLI,
// bundle and installer packages do.
package logging
