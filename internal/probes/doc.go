// Package probes tracks the process lifecycle phase behind the
// orchestrator-facing health endpoints.
//
// The state moves monotonically through three phases:
//   - starting: listener not yet bound
//   - ready: serving, traffic may be routed
//   - draining: shutdown began, in-flight requests are completing
//
// The monitor periodically logs a health snapshot and records the
// ready/uptime gauges.
package probes
