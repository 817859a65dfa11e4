package encode

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/plistkit/go-plist/ir"
)

type EncState struct {
	depth    int
	indent   string
	envelope bool

	b *builder

	Color func(ir.Type, ColorAttr, string) string
}

// dateFormat is the plist date literal layout, UTC only.
const dateFormat = "2006-01-02T15:04:05Z"

// Encode writes node as plist XML to w. By default the fragment is
// wrapped in the document envelope; see EncodeEnvelope. Nothing is
// written to w unless the whole encode succeeds.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   "\t",
		envelope: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	es.b = &builder{indent: es.indent, depth: es.depth}
	if err := encode(node, es); err != nil {
		return err
	}
	out := es.b.text()
	if es.envelope {
		out = Wrap(out)
	}
	_, err := io.WriteString(w, out)
	return err
}

// Dump encodes node to a string, with or without the document
// envelope.
func Dump(node *ir.Node, envelope bool) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeEnvelope(envelope)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Main encode function

func encode(node *ir.Node, es *EncState) error {
	switch node.Type {
	case ir.StringType, ir.IntegerType, ir.RealType:
		return encodeScalar(node, es)
	case ir.BoolType:
		return encodeBool(node, es)
	case ir.DateType:
		return encodeDate(node, es)
	case ir.ArrayType:
		return encodeArray(node, es)
	case ir.DictType:
		return encodeDict(node, es)
	case ir.DataType:
		return encodeData(node, es)
	case ir.OpaqueType:
		return encodeOpaque(node, es)
	default:
		panic("type")
	}
}

// scalarTag maps a scalar kind to its element name. Every caller
// pre-classifies, so the error branch only fires if a kind is added
// without extending this table.
func scalarTag(t ir.Type) (string, error) {
	switch t {
	case ir.StringType:
		return "string", nil
	case ir.IntegerType:
		return "integer", nil
	case ir.RealType:
		return "real", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrScalarKind, t)
	}
}

func encodeScalar(node *ir.Node, es *EncState) error {
	name, err := scalarTag(node.Type)
	if err != nil {
		return err
	}
	var v string
	switch node.Type {
	case ir.StringType:
		v = escapeString(node.String)
	case ir.IntegerType:
		if node.Int == nil {
			return fmt.Errorf("%w: integer node without value", ErrEncoding)
		}
		v = node.Int.String()
	case ir.RealType:
		v = strconv.FormatFloat(node.Float64, 'g', -1, 64)
	}
	writeSimple(es, node.Type, name, v)
	return nil
}

func encodeBool(node *ir.Node, es *EncState) error {
	v := "<false/>"
	if node.Bool {
		v = "<true/>"
	}
	es.b.append(applyColor(es, ir.BoolType, ValueColor, v))
	return nil
}

func encodeDate(node *ir.Node, es *EncState) error {
	writeSimple(es, ir.DateType, "date", node.Time.UTC().Format(dateFormat))
	return nil
}

// Array encoding

func encodeArray(node *ir.Node, es *EncState) error {
	if len(node.Values) == 0 {
		writeEmpty(es, ir.ArrayType, "array")
		return nil
	}
	writeOpen(es, ir.ArrayType, "array")
	es.b.raiseIndent()
	for _, v := range node.Values {
		if err := encode(v, es); err != nil {
			return err
		}
	}
	es.b.lowerIndent()
	writeClose(es, ir.ArrayType, "array")
	return nil
}

// Dict encoding

func encodeDict(node *ir.Node, es *EncState) error {
	if len(node.Fields) == 0 {
		writeEmpty(es, ir.DictType, "dict")
		return nil
	}
	writeOpen(es, ir.DictType, "dict")
	es.b.raiseIndent()
	for _, i := range sortedFieldIndices(node) {
		writeKey(es, node.Fields[i].String)
		if err := encode(node.Values[i], es); err != nil {
			return err
		}
	}
	es.b.lowerIndent()
	writeClose(es, ir.DictType, "dict")
	return nil
}

// sortedFieldIndices yields value indices in key-string order, keeping
// the last entry for a repeated key so output never carries duplicate
// keys.
func sortedFieldIndices(node *ir.Node) []int {
	byKey := make(map[string]int, len(node.Fields))
	for i := range node.Fields {
		byKey[node.Fields[i].String] = i
	}
	idxs := make([]int, 0, len(byKey))
	for _, i := range byKey {
		idxs = append(idxs, i)
	}
	slices.SortFunc(idxs, func(a, b int) int {
		return strings.Compare(node.Fields[a].String, node.Fields[b].String)
	})
	return idxs
}

// Data encoding

func encodeData(node *ir.Node, es *EncState) error {
	d, err := readData(node)
	if err != nil {
		return err
	}
	writeSimple(es, ir.DataType, "data", wrapData(d))
	return nil
}

func readData(node *ir.Node) ([]byte, error) {
	if node.Reader == nil {
		return node.Bytes, nil
	}
	if _, err := node.Reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: rewinding data source: %w", ErrEncoding, err)
	}
	return io.ReadAll(node.Reader)
}

// Opaque encoding

const opaqueComment = "<!-- value has no native plist kind; generic binary snapshot follows -->"

func encodeOpaque(node *ir.Node, es *EncState) error {
	if m, ok := node.Opaque.(ir.Mapper); ok {
		mapped, err := m.ToPlist()
		if err != nil {
			return err
		}
		return encode(mapped, es)
	}
	snap, err := snapshot(node.Opaque)
	if err != nil {
		return err
	}
	es.b.append(applyColor(es, ir.OpaqueType, CommentColor, opaqueComment))
	writeSimple(es, ir.DataType, "data", wrapData(snap))
	return nil
}

func snapshot(v any) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrSnapshot)
	}
	buf := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return buf.Bytes(), nil
}

// Tag writing helpers

func writeSimple(es *EncState, t ir.Type, name, content string) {
	openTag := applyColor(es, t, TagColor, "<"+name+">")
	closeTag := applyColor(es, t, TagColor, "</"+name+">")
	content = applyColor(es, t, ValueColor, content)
	es.b.append(openTag + content + closeTag)
}

func writeEmpty(es *EncState, t ir.Type, name string) {
	es.b.append(applyColor(es, t, TagColor, "<"+name+"/>"))
}

func writeOpen(es *EncState, t ir.Type, name string) {
	es.b.append(applyColor(es, t, TagColor, "<"+name+">"))
}

func writeClose(es *EncState, t ir.Type, name string) {
	es.b.append(applyColor(es, t, TagColor, "</"+name+">"))
}

func writeKey(es *EncState, key string) {
	openTag := applyColor(es, ir.DictType, TagColor, "<key>")
	closeTag := applyColor(es, ir.DictType, TagColor, "</key>")
	v := applyColor(es, ir.DictType, FieldColor, escapeString(key))
	es.b.append(openTag + v + closeTag)
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
