// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics and structured logging throughout medcalc.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into a single
// injectable dependency. [Combine] assembles a Provider from separate
// implementations, for example the slog-based tracer and logger from
// slogobs with the Prometheus-exposed metrics from promobs. [Discard] is a
// Provider that records nothing.
//
// semconv.go holds the attribute keys, span names and metric names shared by
// the dispatcher and the transports.
package observability
