// Package invoke dispatches named invocations against an operation registry.
//
// A [Dispatcher] resolves the requested operation, validates the raw
// arguments against its signature, coerces them into typed [operation.Args]
// and runs the computation. Every failure is reported as an
// [*operation.Error] inside the returned [Result]; nothing panics past
// [Dispatcher.Invoke].
//
// Validation is deterministic: declared parameters are checked in signature
// order (absent before mistyped), then undeclared argument names are
// reported, lexically smallest first.
//
//	d := invoke.New(registry, invoke.WithObserver(observer))
//	res := d.Invoke(ctx, invoke.Request{
//		Operation: "bmi_calculator",
//		Arguments: map[string]any{"weight_kg": 70, "height_m": 1.75},
//	})
//	if !res.Ok() {
//		return res.Err
//	}
package invoke
