// Package logger provides a structured logging facility based on Zap.
//
// Both the CLI commands and the HTTP server build their logger here, so a
// sync reports the same fields (language, range, rows) wherever it runs.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request id) set by the rayid
// middleware from a Fiber context and attaches it to the log entry, so all
// logs of a triggered sync can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync finished")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
