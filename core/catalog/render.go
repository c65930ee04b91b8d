package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects a rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q (want text, json, yaml or markdown)", s)
	}
}

// Write renders descriptors in the given format.
func Write(w io.Writer, format Format, descriptors []Descriptor) error {
	switch format {
	case FormatText, "":
		return WriteText(w, descriptors)
	case FormatJSON:
		return WriteJSON(w, descriptors)
	case FormatYAML:
		return WriteYAML(w, descriptors)
	case FormatMarkdown:
		return WriteMarkdown(w, descriptors)
	default:
		return fmt.Errorf("unknown catalog format %q", format)
	}
}

// WriteText renders one aligned line per operation: its usage and its
// description.
func WriteText(w io.Writer, descriptors []Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range descriptors {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", d.Usage(), d.Description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteJSON renders descriptors as an indented JSON array.
func WriteJSON(w io.Writer, descriptors []Descriptor) error {
	if descriptors == nil {
		descriptors = []Descriptor{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(descriptors); err != nil {
		return fmt.Errorf("encode catalog as JSON: %w", err)
	}
	return nil
}

// WriteYAML renders descriptors as a YAML sequence.
func WriteYAML(w io.Writer, descriptors []Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(descriptors); err != nil {
		return fmt.Errorf("encode catalog as YAML: %w", err)
	}
	return enc.Close()
}

// WriteMarkdown renders a reference document with one section per
// operation.
func WriteMarkdown(w io.Writer, descriptors []Descriptor) error {
	var b strings.Builder
	b.WriteString("# Medical Calculator operations\n")
	for _, d := range descriptors {
		fmt.Fprintf(&b, "\n## %s\n\n", d.Name)
		if d.Description != "" {
			b.WriteString(d.Description + "\n\n")
		}
		fmt.Fprintf(&b, "`%s`\n\n", d.Usage())
		if len(d.Parameters) > 0 {
			b.WriteString("| Parameter | Type | Description |\n|---|---|---|\n")
			for _, p := range d.Parameters {
				fmt.Fprintf(&b, "| `%s` | %s | %s |\n", p.Name, p.Kind, p.Description)
			}
			b.WriteString("\n")
		}
		if d.Notes != "" {
			b.WriteString(d.Notes + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
