// Package promobs implements [observability.Metrics] on top of the Prometheus
// client library.
//
// Attribute keys become label names (characters outside [a-zA-Z0-9_] are
// replaced by underscores) and attribute values become label values. Each
// [Registry] owns its own prometheus.Registry; use [Registry.Handler] to
// serve it over HTTP or [Registry.WriteText] to render it directly.
package promobs
