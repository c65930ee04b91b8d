package invoke

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/leofalp/medcalc/core/operation"
	"github.com/leofalp/medcalc/core/parse"
	"github.com/leofalp/medcalc/internal/utils"
	"github.com/leofalp/medcalc/providers/observability"
)

// Dispatcher validates and runs invocations. It holds no per-call state and
// is safe for concurrent use once the registry is populated.
type Dispatcher struct {
	registry *operation.Registry
	observer observability.Provider
}

// New creates a Dispatcher over registry.
func New(registry *operation.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		observer: observability.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher resolves names against.
func (d *Dispatcher) Registry() *operation.Registry {
	return d.registry
}

// Invoke runs one request. ctx carries the observability span and the
// operation name; cancellation is not observed.
func (d *Dispatcher) Invoke(ctx context.Context, req Request) Result {
	ctx, span := d.observer.StartSpan(ctx, observability.SpanInvocation,
		observability.String(observability.AttrOperationName, req.Operation),
		observability.Int(observability.AttrOperationArgsCount, len(req.Arguments)),
	)
	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithOperation(ctx, req.Operation)
	defer span.End()

	d.observer.Debug(ctx, "invocation started",
		observability.Int(observability.AttrOperationArgsCount, len(req.Arguments)),
	)

	sw := utils.StartStopwatch()
	result := d.dispatch(span, req)
	elapsed := sw.Elapsed()

	label := req.Operation
	if result.Err != nil && result.Err.Kind == operation.UnknownOperation {
		label = observability.UnknownOperationLabel
	}
	outcome := observability.OutcomeOK
	if !result.Ok() {
		outcome = observability.OutcomeError
	}
	d.observer.Counter(observability.MetricInvocations).Add(ctx, 1,
		observability.String(observability.AttrOperationName, label),
		observability.String(observability.AttrOperationOutcome, outcome),
	)
	d.observer.Histogram(observability.MetricInvocationDuration).Record(ctx, elapsed.Seconds(),
		observability.String(observability.AttrOperationName, label),
	)

	if !result.Ok() {
		span.RecordError(result.Err)
		span.SetStatus(observability.StatusError, result.Err.Kind.String())
		d.observer.Warn(ctx, "invocation failed",
			observability.String(observability.AttrOperationErrorKind, result.Err.Kind.String()),
			observability.String(observability.AttrOperationParameter, result.Err.Parameter),
			observability.Error(result.Err),
			observability.Duration(observability.AttrOperationDuration, elapsed),
		)
		return result
	}

	span.SetAttributes(observability.Float64(observability.AttrOperationResult, result.Value))
	span.SetStatus(observability.StatusOK, "")
	d.observer.Info(ctx, "invocation finished",
		observability.Float64(observability.AttrOperationResult, result.Value),
		observability.Duration(observability.AttrOperationDuration, elapsed),
	)
	return result
}

// Call invokes name with args and returns the value or the typed failure.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (float64, error) {
	res := d.Invoke(ctx, Request{Operation: name, Arguments: args})
	if !res.Ok() {
		return 0, res.Err
	}
	return res.Value, nil
}

func (d *Dispatcher) dispatch(span observability.Span, req Request) Result {
	entry, err := d.registry.Lookup(req.Operation)
	if err != nil {
		return Failure(asOperationError(req.Operation, err))
	}

	args, opErr := bind(entry.Signature, req.Arguments)
	if opErr != nil {
		return Failure(opErr)
	}
	span.AddEvent(observability.EventArgumentsValidated)

	value, opErr := compute(entry, args)
	span.AddEvent(observability.EventComputationEnd)
	if opErr != nil {
		return Failure(opErr)
	}
	return Success(value)
}

// bind validates raw against sig and returns the arguments in parameter
// order.
func bind(sig operation.Signature, raw map[string]any) (operation.Args, *operation.Error) {
	args := make(operation.Args, len(sig.Parameters))
	for i, p := range sig.Parameters {
		v, ok := raw[p.Name]
		if !ok {
			return nil, operation.Missing(sig.Name, p.Name)
		}
		value, err := parse.Coerce(v, p.Kind)
		if err != nil {
			return nil, operation.Mismatch(sig.Name, p.Name, p.Kind, parse.Describe(v), err.Error())
		}
		args[i] = value
	}

	if len(raw) > len(sig.Parameters) {
		var extra []string
		for name := range raw {
			if _, declared := sig.Parameter(name); !declared {
				extra = append(extra, name)
			}
		}
		if len(extra) > 0 {
			return nil, operation.Unexpected(sig.Name, slices.Min(extra))
		}
	}
	return args, nil
}

// compute runs the entry's formula, converting returned errors, panics and
// non-finite results into ComputationError.
func compute(entry operation.Entry, args operation.Args) (value float64, opErr *operation.Error) {
	defer func() {
		if r := recover(); r != nil {
			value = 0
			opErr = operation.Computation(entry.Name, fmt.Sprintf("computation panicked: %v", r))
		}
	}()

	v, err := entry.Compute(args)
	if err != nil {
		var typed *operation.Error
		if errors.As(err, &typed) && typed.Kind == operation.ComputationError {
			return 0, typed
		}
		return 0, operation.ComputationFrom(entry.Name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, operation.Computation(entry.Name, fmt.Sprintf("result is not finite (%v)", v))
	}
	return v, nil
}

func asOperationError(name string, err error) *operation.Error {
	var typed *operation.Error
	if errors.As(err, &typed) {
		return typed
	}
	return operation.ComputationFrom(name, err)
}
