package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockSpan records what the code under test does with a span.
type mockSpan struct {
	name   string
	mu     sync.Mutex
	attrs  []Attribute
	events []string
	status StatusCode
	errs   []error
	ended  bool
}

func (m *mockSpan) End() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended = true
}

func (m *mockSpan) SetAttributes(attrs ...Attribute) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attrs = append(m.attrs, attrs...)
}

func (m *mockSpan) SetStatus(code StatusCode, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = code
}

func (m *mockSpan) RecordError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}

func (m *mockSpan) AddEvent(name string, _ ...Attribute) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, name)
}

type mockTracer struct{ span *mockSpan }

func (m *mockTracer) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	m.span = &mockSpan{name: name, attrs: attrs}
	return ctx, m.span
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		key  string
		want any
	}{
		{"string", String(AttrOperationName, "bmi_calculator"), AttrOperationName, "bmi_calculator"},
		{"int", Int(AttrOperationArgsCount, 2), AttrOperationArgsCount, 2},
		{"int64", Int64("count", 9223372036854775807), "count", int64(9223372036854775807)},
		{"float64", Float64(AttrOperationResult, 22.5), AttrOperationResult, 22.5},
		{"bool", Bool("flag", true), "flag", true},
		{"duration", Duration(AttrOperationDuration, time.Second), AttrOperationDuration, time.Second},
		{"error", Error(errors.New("boom")), AttrError, "boom"},
		{"nil error", Error(nil), AttrError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.want {
				t.Errorf("value = %v, want %v", tt.attr.Value, tt.want)
			}
		})
	}
}

func TestCombine_UsesGivenParts(t *testing.T) {
	tracer := &mockTracer{}
	provider := Combine(tracer, nil, nil)

	_, span := provider.StartSpan(context.Background(), SpanInvocation, String(AttrOperationName, "x"))
	span.End()

	if tracer.span == nil || tracer.span.name != SpanInvocation {
		t.Fatalf("expected span %q from the supplied tracer", SpanInvocation)
	}
	if !tracer.span.ended {
		t.Error("span was not ended")
	}

	// Nil parts fall back to Discard and must not panic.
	provider.Counter(MetricInvocations).Add(context.Background(), 1)
	provider.Histogram(MetricInvocationDuration).Record(context.Background(), 0.1)
	provider.Info(context.Background(), "ignored")
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := Discard.StartSpan(ctx, "noop")
	if gotCtx != ctx {
		t.Error("Discard should return the context unchanged")
	}
	span.SetAttributes(String("k", "v"))
	span.SetStatus(StatusError, "x")
	span.RecordError(errors.New("x"))
	span.AddEvent("e")
	span.End()
	Discard.Trace(ctx, "m")
	Discard.Debug(ctx, "m")
	Discard.Warn(ctx, "m")
	Discard.Error(ctx, "m")
}

func TestSpanContext(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Error("expected nil span from empty context")
	}

	span := &mockSpan{name: "parent"}
	ctx := ContextWithSpan(context.Background(), span)
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("SpanFromContext = %v, want %v", got, span)
	}

	child := &mockSpan{name: "child"}
	ctx = ContextWithSpan(ctx, child)
	if got := SpanFromContext(ctx); got != child {
		t.Error("inner span should shadow the outer one")
	}

	if SpanFromContext(nil) != nil {
		t.Error("expected nil span from nil context")
	}
}

func TestOperationContext(t *testing.T) {
	if _, ok := OperationFromContext(context.Background()); ok {
		t.Error("expected no operation in empty context")
	}

	ctx := ContextWithOperation(context.Background(), "calculate_egfr")
	name, ok := OperationFromContext(ctx)
	if !ok || name != "calculate_egfr" {
		t.Errorf("OperationFromContext = %q, %v", name, ok)
	}

	ctx = ContextWithSpan(ctx, &mockSpan{name: "s"})
	if name, _ := OperationFromContext(ctx); name != "calculate_egfr" {
		t.Error("operation lost after attaching a span")
	}
}
