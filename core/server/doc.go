// Package server holds the HTTP server configuration.
//
// The `serve` command exposes the sync as an HTTP endpoint so it can be
// re-triggered externally (for example by CI after extracting messages).
// Requests must carry the configured API key.
package server
