// Package parse turns loosely typed caller input into validated operation
// arguments.
//
// [Coerce] converts one raw value into an [operation.Value] of a declared
// kind, accepting only lossless conversions: a fractional number is never
// truncated into an integer and booleans are never read from numbers.
// [DecodeArguments] decodes a JSON object of arguments, preserving numbers
// as [json.Number] so integers survive exactly, and falls back to automatic
// JSON repair when the input is malformed.
package parse
