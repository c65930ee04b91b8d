package operation

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a registration or invocation failure.
type ErrorKind int

const (
	// UnknownOperation: the requested name is not registered.
	UnknownOperation ErrorKind = iota + 1
	// MissingArgument: a declared parameter was not supplied.
	MissingArgument
	// UnexpectedArgument: an argument name is not part of the signature.
	UnexpectedArgument
	// TypeMismatch: a value cannot be losslessly coerced to the declared kind.
	TypeMismatch
	// DuplicateOperation: a second entry was registered under an existing name.
	DuplicateOperation
	// ComputationError: the formula is undefined for the supplied inputs.
	ComputationError
	// InvalidSignature: an entry violates the signature invariants.
	InvalidSignature
)

var errorKindNames = map[ErrorKind]string{
	UnknownOperation:   "UnknownOperation",
	MissingArgument:    "MissingArgument",
	UnexpectedArgument: "UnexpectedArgument",
	TypeMismatch:       "TypeMismatch",
	DuplicateOperation: "DuplicateOperation",
	ComputationError:   "ComputationError",
	InvalidSignature:   "InvalidSignature",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrUnknownOperation   = &Error{Kind: UnknownOperation}
	ErrMissingArgument    = &Error{Kind: MissingArgument}
	ErrUnexpectedArgument = &Error{Kind: UnexpectedArgument}
	ErrTypeMismatch       = &Error{Kind: TypeMismatch}
	ErrDuplicateOperation = &Error{Kind: DuplicateOperation}
	ErrComputation        = &Error{Kind: ComputationError}
	ErrInvalidSignature   = &Error{Kind: InvalidSignature}
)

// Error is the typed failure produced by the registry and the dispatcher.
// Operation and Parameter name the responsible operation and argument when
// they are known. Expected and Actual are set for TypeMismatch.
type Error struct {
	Kind      ErrorKind
	Operation string
	Parameter string
	Expected  Kind
	Actual    string
	Detail    string
	// Err is the underlying cause, if any.
	Err error
}

func newError(kind ErrorKind, op, param, detail string) *Error {
	return &Error{Kind: kind, Operation: op, Parameter: param, Detail: detail}
}

// Unknown reports an unregistered operation name.
func Unknown(name string) *Error {
	return newError(UnknownOperation, name, "", "")
}

// Missing reports an absent required argument.
func Missing(op, param string) *Error {
	return newError(MissingArgument, op, param, "")
}

// Unexpected reports an argument the signature does not declare.
func Unexpected(op, param string) *Error {
	return newError(UnexpectedArgument, op, param, "")
}

// Mismatch reports a value that cannot be coerced to the expected kind.
// actual describes the offending value; reason explains the rejection.
func Mismatch(op, param string, expected Kind, actual, reason string) *Error {
	e := newError(TypeMismatch, op, param, reason)
	e.Expected = expected
	e.Actual = actual
	return e
}

// Computation reports a formula that is undefined for its inputs.
func Computation(op, detail string) *Error {
	return newError(ComputationError, op, "", detail)
}

// ComputationFrom wraps an error returned by a computation.
func ComputationFrom(op string, cause error) *Error {
	e := newError(ComputationError, op, "", cause.Error())
	e.Err = cause
	return e
}

// Message is the human-readable description without the kind prefix.
func (e *Error) Message() string {
	switch e.Kind {
	case UnknownOperation:
		return fmt.Sprintf("unknown operation %q", e.Operation)
	case MissingArgument:
		return fmt.Sprintf("missing argument %q for %s", e.Parameter, e.Operation)
	case UnexpectedArgument:
		return fmt.Sprintf("unexpected argument %q for %s", e.Parameter, e.Operation)
	case TypeMismatch:
		msg := fmt.Sprintf("argument %q for %s must be %s, got %s", e.Parameter, e.Operation, e.Expected, e.Actual)
		if e.Detail != "" {
			msg += " (" + e.Detail + ")"
		}
		return msg
	case DuplicateOperation:
		return fmt.Sprintf("operation %q is already registered", e.Operation)
	}

	var b strings.Builder
	if e.Operation != "" {
		b.WriteString(e.Operation)
		if e.Parameter != "" {
			b.WriteString("." + e.Parameter)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Detail)
	return b.String()
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message()
}

// Is matches any *Error of the same kind, so the package sentinels work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
