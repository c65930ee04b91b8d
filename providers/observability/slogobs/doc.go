// Package slogobs implements the tracing and logging halves of
// [observability.Provider] on top of log/slog.
//
// Spans are rendered as debug log records (span.start, span.end and events);
// log calls map onto slog levels, with TRACE below DEBUG. Output is either
// the compact single-line format or slog's JSON format, written to stderr by
// default so that a stdio transport keeps stdout for protocol traffic.
package slogobs
