package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/leofalp/medcalc/core/operation"
)

// Schema is the subset of JSON Schema needed to describe operation
// arguments.
type Schema struct {
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    []string `json:"required,omitempty" yaml:"required,omitempty"`
	// Properties of the arguments object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	// AdditionalProperties controls whether undeclared properties are allowed
	AdditionalProperties *bool `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// FromSignature returns the arguments schema for sig. Parameters without
// a description fall back to their kind.
func FromSignature(sig operation.Signature) *Schema {
	closed := false
	s := &Schema{
		Type:                 "object",
		Title:                sig.Name,
		Description:          sig.Description,
		Properties:           make(map[string]*Schema, len(sig.Parameters)),
		Required:             make([]string, 0, len(sig.Parameters)),
		AdditionalProperties: &closed,
	}
	for _, p := range sig.Parameters {
		s.Properties[p.Name] = &Schema{
			Type:        p.Kind.String(),
			Description: p.Description,
		}
		s.Required = append(s.Required, p.Name)
	}
	return s
}

// JsonString returns the JSON encoding of the schema, indented if requested.
func (s *Schema) JsonString(indent bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(data), nil
}

// String returns the compact JSON encoding, or an error message when
// marshalling fails.
func (s *Schema) String() string {
	str, err := s.JsonString(false)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return str
}
