package operation

import "fmt"

// Kind is the declared type of a parameter or return value.
type Kind int

const (
	// Number is a finite floating-point value.
	Number Kind = iota + 1
	// Integer is a whole number; fractional values are never truncated into it.
	Integer
	// Boolean is true or false.
	Boolean
)

// String returns the lower-case name of the kind, which is also its JSON
// Schema type.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k == Number || k == Integer || k == Boolean
}

// MarshalText renders the kind by name so catalogs serialise it readably.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("operation: cannot marshal invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}
