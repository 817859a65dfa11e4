package gomap

import "fmt"

// MarshalError reports a Go value that could not be mapped to IR.
type MarshalError struct {
	// FieldPath locates the offending value, e.g. "person.address.street".
	FieldPath string
	Message   string
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("gomap: %s: %s", e.FieldPath, e.Message)
	}
	return "gomap: " + e.Message
}
