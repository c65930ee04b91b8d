package observability

import "context"

// Discard is a Provider that drops every span, metric and log record.
var Discard Provider = discard{}

type discard struct{}

func (discard) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, discardSpan{}
}

func (discard) Counter(string) Counter     { return discardMetric{} }
func (discard) Histogram(string) Histogram { return discardMetric{} }

func (discard) Trace(context.Context, string, ...Attribute) {}
func (discard) Debug(context.Context, string, ...Attribute) {}
func (discard) Info(context.Context, string, ...Attribute)  {}
func (discard) Warn(context.Context, string, ...Attribute)  {}
func (discard) Error(context.Context, string, ...Attribute) {}

type discardSpan struct{}

func (discardSpan) End()                          {}
func (discardSpan) SetAttributes(...Attribute)    {}
func (discardSpan) SetStatus(StatusCode, string)  {}
func (discardSpan) RecordError(error)             {}
func (discardSpan) AddEvent(string, ...Attribute) {}

type discardMetric struct{}

func (discardMetric) Add(context.Context, int64, ...Attribute)      {}
func (discardMetric) Record(context.Context, float64, ...Attribute) {}
