// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Implements API key validation (X-API-Key) to protect the sync trigger.
//   - RayID: Assigns a Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
