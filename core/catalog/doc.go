// Package catalog describes the operations held by a registry for humans
// and for machines.
//
// [Describe] snapshots a registry into [Descriptor] values, pairing each
// signature with its JSON Schema and optional reference notes. Notes are
// authored as HTML fragments and converted to Markdown here. The
// descriptors can then be rendered as an aligned text table, JSON, YAML or a
// Markdown reference document.
package catalog
