package catalog

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/medcalc/core/operation"
	"github.com/leofalp/medcalc/internal/jsonschema"
)

// Descriptor is the listing form of one operation.
type Descriptor struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []operation.Parameter `json:"parameters" yaml:"parameters"`
	Returns     operation.Kind        `json:"returns" yaml:"returns"`
	InputSchema *jsonschema.Schema    `json:"input_schema" yaml:"input_schema"`
	// Notes is reference material in Markdown.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NotesFunc returns the HTML notes for an operation, or "" when there are
// none.
type NotesFunc func(name string) string

// Describe returns a descriptor for every operation in r, in registration
// order. notes may be nil.
func Describe(r *operation.Registry, notes NotesFunc) ([]Descriptor, error) {
	var out []Descriptor
	for sig := range r.List() {
		d := Descriptor{
			Name:        sig.Name,
			Description: sig.Description,
			Parameters:  sig.Parameters,
			Returns:     sig.Returns,
			InputSchema: jsonschema.FromSignature(sig),
		}
		if notes != nil {
			if html := notes(sig.Name); html != "" {
				md, err := htmltomarkdown.ConvertString(html)
				if err != nil {
					return nil, fmt.Errorf("convert notes for %s: %w", sig.Name, err)
				}
				d.Notes = strings.TrimSpace(md)
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// Usage renders the call shape of an operation, e.g.
// "bmi_calculator(weight_kg: number, height_m: number) -> number".
func (d Descriptor) Usage() string {
	params := make([]string, len(d.Parameters))
	for i, p := range d.Parameters {
		params[i] = p.Name + ": " + p.Kind.String()
	}
	return fmt.Sprintf("%s(%s) -> %s", d.Name, strings.Join(params, ", "), d.Returns)
}
