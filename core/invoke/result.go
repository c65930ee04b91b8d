package invoke

import "github.com/leofalp/medcalc/core/operation"

// Request names an operation and carries its raw keyword arguments, as
// decoded from the caller (JSON numbers may arrive as json.Number).
type Request struct {
	Operation string         `json:"operation"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Result is the outcome of one invocation: a finite number on success, or
// the typed failure.
type Result struct {
	Value float64
	Err   *operation.Error
}

// Success wraps a computed value.
func Success(value float64) Result {
	return Result{Value: value}
}

// Failure wraps a typed error.
func Failure(err *operation.Error) Result {
	return Result{Err: err}
}

// Ok reports whether the invocation succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Error returns the failure as an error, or nil on success.
func (r Result) Error() error {
	if r.Err == nil {
		return nil
	}
	return r.Err
}
