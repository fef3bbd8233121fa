// Package format renders parse results for human and machine
// consumption.
package format

// Encoder writes a parse result to an output stream.
type Encoder interface {
	Encode(v any) error
}
