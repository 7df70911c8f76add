// Package metrics defines the optional instrumentation surface the
// solver's Driver reports through: a small Recorder interface with a
// no-op default and a Prometheus implementation, so the engine never
// pays for instrumentation it isn't given.
package metrics
