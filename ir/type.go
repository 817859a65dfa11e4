package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	IntegerType
	RealType
	BoolType
	DateType
	ArrayType
	DictType
	DataType
	OpaqueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:  "String",
		IntegerType: "Integer",
		RealType:    "Real",
		BoolType:    "Bool",
		DateType:    "Date",
		ArrayType:   "Array",
		DictType:    "Dict",
		DataType:    "Data",
		OpaqueType:  "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":  StringType,
		"Integer": IntegerType,
		"Real":    RealType,
		"Bool":    BoolType,
		"Date":    DateType,
		"Array":   ArrayType,
		"Dict":    DictType,
		"Data":    DataType,
		"Opaque":  OpaqueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		RealType,
		BoolType,
		DateType,
		ArrayType,
		DictType,
		DataType,
		OpaqueType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType:
		return false
	default:
		return true
	}
}

// IsScalar reports whether t is one of the textual scalar kinds, those
// encoded as <string>, <integer> or <real>.
func (t Type) IsScalar() bool {
	switch t {
	case StringType, IntegerType, RealType:
		return true
	default:
		return false
	}
}
