package operation

import (
	"fmt"
	"strings"
)

// Parameter is one named, required input of an operation.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Signature describes an operation: its unique name, the ordered parameters
// it requires and the kind of value it returns.
type Signature struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Returns     Kind        `json:"returns" yaml:"returns"`
}

// Func is the pure computation behind an operation. It receives arguments
// already validated against the signature, in parameter order.
type Func func(args Args) (float64, error)

// Entry binds a Signature to its computation.
type Entry struct {
	Signature
	Compute Func
}

// NewEntry builds an Entry returning a Number from the given parameters.
func NewEntry(name, description string, compute Func, params ...Parameter) Entry {
	return Entry{
		Signature: Signature{
			Name:        name,
			Description: description,
			Parameters:  params,
			Returns:     Number,
		},
		Compute: compute,
	}
}

// Param is shorthand for a Parameter literal.
func Param(name string, kind Kind, description string) Parameter {
	return Parameter{Name: name, Kind: kind, Description: description}
}

// Parameter returns the declared parameter with the given name.
func (s Signature) Parameter(name string) (Parameter, bool) {
	for _, p := range s.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// clone returns a copy whose parameter slice is not shared with s.
func (s Signature) clone() Signature {
	s.Parameters = append([]Parameter(nil), s.Parameters...)
	return s
}

// validate checks the structural invariants of an entry before it is
// registered.
func (e Entry) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return newError(InvalidSignature, e.Name, "", "operation name is empty")
	}
	if e.Compute == nil {
		return newError(InvalidSignature, e.Name, "", "computation is nil")
	}
	if !e.Returns.Valid() {
		return newError(InvalidSignature, e.Name, "", fmt.Sprintf("invalid return kind %s", e.Returns))
	}
	seen := make(map[string]struct{}, len(e.Parameters))
	for i, p := range e.Parameters {
		if strings.TrimSpace(p.Name) == "" {
			return newError(InvalidSignature, e.Name, "", fmt.Sprintf("parameter %d has no name", i))
		}
		if !p.Kind.Valid() {
			return newError(InvalidSignature, e.Name, p.Name, fmt.Sprintf("invalid kind %s", p.Kind))
		}
		if _, dup := seen[p.Name]; dup {
			return newError(InvalidSignature, e.Name, p.Name, "parameter declared twice")
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
