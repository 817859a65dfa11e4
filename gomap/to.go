package gomap

import (
	"fmt"
	"io"
	"math/big"
	"reflect"
	"slices"
	"time"

	"github.com/plistkit/go-plist/ir"
)

// ToIR converts a Go value to an IR node. It uses the ir.Mapper
// capability if the value (or a pointer to it) implements it,
// otherwise falls back to reflection-based conversion. Values with no
// native plist kind become opaque nodes; the encoder's snapshot
// fallback handles those.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot map nil value: plists have no null kind"}
	}
	if m, ok := v.(ir.Mapper); ok {
		return m.ToPlist()
	}

	val := reflect.ValueOf(v)
	typ := val.Type()

	// If v is a value type, check if the pointer type has the capability.
	if typ.Kind() != reflect.Ptr {
		ptrType := reflect.PointerTo(typ)
		if ptrType.Implements(mapperType) {
			ptrVal := reflect.New(typ)
			ptrVal.Elem().Set(val)
			return ptrVal.Interface().(ir.Mapper).ToPlist()
		}
	}

	visited := make(map[uintptr]string)
	return toIRReflect(val, "", visited)
}

var (
	mapperType     = reflect.TypeOf((*ir.Mapper)(nil)).Elem()
	readSeekerType = reflect.TypeOf((*io.ReadSeeker)(nil)).Elem()
	timeType       = reflect.TypeOf(time.Time{})
	bigIntType     = reflect.TypeOf(big.Int{})
	nodeType       = reflect.TypeOf(ir.Node{})
)

// toIRReflect converts a reflect.Value to an IR node. fieldPath is
// used for error reporting; visited tracks in-progress pointers for
// cycle detection.
func toIRReflect(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()

	// Capability check comes before any classification.
	if typ.Kind() != reflect.Interface {
		if typ.Implements(mapperType) {
			if typ.Kind() != reflect.Ptr || !val.IsNil() {
				return val.Interface().(ir.Mapper).ToPlist()
			}
		} else if val.CanAddr() && reflect.PointerTo(typ).Implements(mapperType) {
			return val.Addr().Interface().(ir.Mapper).ToPlist()
		}
	}

	// Well-known concrete types before kind-based dispatch.
	switch typ {
	case timeType:
		return ir.FromTime(val.Interface().(time.Time)), nil
	case bigIntType:
		bi := val.Interface().(big.Int)
		return ir.FromBigInt(&bi), nil
	case nodeType:
		node := val.Interface().(ir.Node)
		return &node, nil
	}
	if typ.Kind() != reflect.Interface && typ.Implements(readSeekerType) {
		if typ.Kind() != reflect.Ptr || !val.IsNil() {
			return ir.FromReader(val.Interface().(io.ReadSeeker)), nil
		}
	}

	switch typ.Kind() {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromUint(val.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Slice, reflect.Array:
		return toIRSequence(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	case reflect.Ptr:
		return toIRPointer(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   "nil interface value",
			}
		}
		return toIRReflect(val.Elem(), fieldPath, visited)

	default:
		// func, chan, complex, unsafe pointer: no native plist kind.
		return ir.FromOpaque(val.Interface()), nil
	}
}

func toIRPointer(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   "nil pointer",
		}
	}
	ptrAddr := val.Pointer()
	if prevPath, seen := visited[ptrAddr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected (previously seen at %q)", prevPath),
		}
	}
	visited[ptrAddr] = fieldPath
	node, err := toIRReflect(val.Elem(), fieldPath, visited)
	delete(visited, ptrAddr)
	return node, err
}

func toIRSequence(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Type().Elem().Kind() == reflect.Uint8 {
		if val.Kind() == reflect.Array {
			d := make([]byte, val.Len())
			reflect.Copy(reflect.ValueOf(d), val)
			return ir.FromBytes(d), nil
		}
		return ir.FromBytes(val.Bytes()), nil
	}
	n := val.Len()
	elems := make([]*ir.Node, n)
	for i := range n {
		elem, err := toIRReflect(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return ir.FromSlice(elems), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type %s is not a string", val.Type().Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	byKey := make(map[string]reflect.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		byKey[k] = iter.Value()
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		node, err := toIRReflect(byKey[k], joinPath(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	kvs := make([]ir.KeyVal, 0, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		info := parseFieldTag(sf)
		if info.Omit {
			continue
		}
		fv := val.Field(i)
		if info.OmitEmpty && fv.IsZero() {
			continue
		}
		node, err := toIRReflect(fv, joinPath(fieldPath, info.Name), visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: info.Name, Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
