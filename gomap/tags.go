package gomap

import (
	"reflect"
	"strings"
)

// FieldInfo holds field metadata extracted from struct tags.
type FieldInfo struct {
	// Name is the dict key, the struct field name unless renamed by tag.
	Name string

	// Omit indicates the field is excluded from mapping (`plist:"-"`).
	Omit bool

	// OmitEmpty indicates the field is skipped when it holds its
	// type's zero value.
	OmitEmpty bool
}

func parseFieldTag(sf reflect.StructField) FieldInfo {
	info := FieldInfo{Name: sf.Name}
	tag, ok := sf.Tag.Lookup("plist")
	if !ok {
		return info
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		info.Omit = true
		return info
	}
	if parts[0] != "" {
		info.Name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			info.OmitEmpty = true
		}
	}
	return info
}
