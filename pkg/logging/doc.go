// Package logging provides structured logging utilities for winkit components.
//
// # Overview
//
// This package wraps the standard library slog package with winkit defaults
// and conventions for consistent logging across the CLI and the API server.
// It supports environment-based log level configuration, module/version
// context injection, a CRITICAL level, console plus file fan-out and a
// weekly rotating log file.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//   - CRITICAL/FATAL: Failures that end the run
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("winkitd", "v1.0.0")
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Logging to the console and a rotating file:
//
//	rf, err := logging.NewRotatingFile("/var/log/winkit/winkit.log")
//	if err != nil {
//	    return err
//	}
//	defer rf.Close()
//
//	h := logging.NewFanoutHandler(
//	    logging.NewHandler(os.Stdout, logging.FormatText, slog.LevelInfo, false),
//	    logging.NewHandler(rf, logging.FormatJSON, slog.LevelInfo, true),
//	)
//	slog.SetDefault(slog.New(h))
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug winkit versioninfo app.py
//
// # Rotation
//
// RotatingFile rotates at midnight of the rollover day (Sunday by default),
// renames the old file to "<name>.YYYY-MM-DD" and keeps the newest four
// backups.
package logging
