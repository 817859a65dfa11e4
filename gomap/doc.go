// Package gomap converts Go values to the plist IR.
//
// Conversion prefers the ir.Mapper capability when a value implements
// it, then falls back to reflection: strings, booleans, integer and
// float kinds, time.Time, big.Int, byte slices, io.ReadSeeker data
// sources, string-keyed maps, slices, arrays, pointers and structs all
// map to their native plist kinds. Struct fields honor `plist` tags:
//
//	type Track struct {
//	    Title  string `plist:"title"`
//	    Rating int    `plist:"rating,omitempty"`
//	    Raw    []byte `plist:"-"`
//	}
//
// Kinds with no plist representation (func, chan, complex) become
// opaque nodes which the encoder serializes as a best-effort binary
// snapshot.
package gomap
