// Package format names the serialization formats the module reads and
// writes: plist XML on the output side, JSON and YAML on the input
// side.
package format
