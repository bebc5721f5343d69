// Package http provides the HTTP API implementation.
//
// The HTTP server exposes endpoints for:
//   - The hello greeting
//   - Liveness and readiness probes
//   - Prometheus metrics
package http
