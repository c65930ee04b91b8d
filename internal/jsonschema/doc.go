// Package jsonschema renders operation signatures as JSON Schema objects.
//
// The schema produced by [FromSignature] describes the arguments object an
// operation accepts: one property per declared parameter, every parameter
// required and no additional properties. It is used as the input schema of
// the MCP tools and in the catalog listings.
package jsonschema
