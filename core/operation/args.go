package operation

import "fmt"

// Value is a single validated argument.
type Value struct {
	kind    Kind
	number  float64
	integer int64
	boolean bool
}

// NumberValue wraps a float64.
func NumberValue(v float64) Value { return Value{kind: Number, number: v} }

// IntegerValue wraps an int64.
func IntegerValue(v int64) Value { return Value{kind: Integer, integer: v} }

// BooleanValue wraps a bool.
func BooleanValue(v bool) Value { return Value{kind: Boolean, boolean: v} }

// Kind reports the kind the value was validated as.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the value as float64, int64 or bool.
func (v Value) Interface() any {
	switch v.kind {
	case Number:
		return v.number
	case Integer:
		return v.integer
	case Boolean:
		return v.boolean
	default:
		return nil
	}
}

func (v Value) String() string {
	return fmt.Sprint(v.Interface())
}

// Args holds validated arguments in signature order.
//
// The accessors panic when the index or kind does not match the signature;
// the dispatcher recovers such panics into a ComputationError.
type Args []Value

// Number returns argument i as float64. Integer arguments widen to float64.
func (a Args) Number(i int) float64 {
	v := a[i]
	switch v.kind {
	case Number:
		return v.number
	case Integer:
		return float64(v.integer)
	default:
		panic(fmt.Sprintf("operation: argument %d is %s, not number", i, v.kind))
	}
}

// Integer returns argument i as int64.
func (a Args) Integer(i int) int64 {
	v := a[i]
	if v.kind != Integer {
		panic(fmt.Sprintf("operation: argument %d is %s, not integer", i, v.kind))
	}
	return v.integer
}

// Boolean returns argument i as bool.
func (a Args) Boolean(i int) bool {
	v := a[i]
	if v.kind != Boolean {
		panic(fmt.Sprintf("operation: argument %d is %s, not boolean", i, v.kind))
	}
	return v.boolean
}
