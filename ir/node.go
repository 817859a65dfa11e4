package ir

import (
	"io"
	"maps"
	"math/big"
	"slices"
	"time"
)

// Node is a single value in a property list document. It is a tagged
// union: Type selects which payload fields are meaningful.
type Node struct {
	Type Type

	String  string
	Int     *big.Int
	Float64 float64
	Bool    bool
	Time    time.Time

	// Dicts keep Fields[i] as the string-typed key for Values[i].
	// Arrays use Values only.
	Fields []*Node
	Values []*Node

	// Data payload: Reader wins over Bytes when both are set. The
	// encoder rewinds Reader to its start before consuming it.
	Reader io.ReadSeeker
	Bytes  []byte

	// Opaque holds a host value outside the native plist kinds.
	Opaque any
}

// Mapper is the attribute-mapping capability: a host value that can
// produce its own dict representation. The gomap package and the
// encoder's opaque fallback both check for it before anything else.
type Mapper interface {
	ToPlist() (*Node, error)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Float64 = y.Float64
	dst.Bool = y.Bool
	dst.Time = y.Time
	dst.Reader = y.Reader
	dst.Opaque = y.Opaque
	if y.Int != nil {
		dst.Int = new(big.Int).Set(y.Int)
	}
	if y.Bytes != nil {
		dst.Bytes = slices.Clone(y.Bytes)
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntegerType,
		Int:  big.NewInt(v),
	}
}

func FromUint(v uint64) *Node {
	return &Node{
		Type: IntegerType,
		Int:  new(big.Int).SetUint64(v),
	}
}

func FromBigInt(v *big.Int) *Node {
	return &Node{
		Type: IntegerType,
		Int:  new(big.Int).Set(v),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    RealType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromTime builds a date node. Plist dates are UTC; the encoder
// normalizes, but normalizing here keeps nodes comparable.
func FromTime(t time.Time) *Node {
	return &Node{
		Type: DateType,
		Time: t.UTC(),
	}
}

func FromBytes(d []byte) *Node {
	return &Node{
		Type:  DataType,
		Bytes: d,
	}
}

func FromReader(r io.ReadSeeker) *Node {
	return &Node{
		Type:   DataType,
		Reader: r,
	}
}

func FromOpaque(v any) *Node {
	return &Node{
		Type:   OpaqueType,
		Opaque: v,
	}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: DictType}
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a dict preserving the given order. The encoder
// sorts keys at emission, so order here only affects in-memory
// traversal, never output.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: DictType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
