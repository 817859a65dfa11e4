package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/plistkit/go-plist/format"
	"github.com/plistkit/go-plist/gomap"
	"github.com/plistkit/go-plist/ir"
)

var ErrParse = errors.New("parse error")

type ParseOption func(*parseState)

type parseState struct {
	format format.Format
}

func ParseFormat(f format.Format) ParseOption {
	return func(ps *parseState) { ps.format = f }
}

// Parse loads JSON or YAML text into an IR node tree. JSON integers of
// any width survive losslessly; there is no reader for plist XML, the
// module only emits it.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	ps := &parseState{format: format.JSONFormat}
	for _, opt := range opts {
		opt(ps)
	}
	var doc any
	switch ps.format {
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: no reader for %s input", ErrParse, ps.format)
	}
	return fromAny(doc, "$")
}

func fromAny(v any, path string) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null at %s has no plist kind", ErrParse, path)
	case map[string]any:
		return fromAnyMap(t, path)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v at %s", ErrParse, k, path)
			}
			m[ks] = v
		}
		return fromAnyMap(m, path)
	case []any:
		elems := make([]*ir.Node, len(t))
		for i, e := range t {
			node, err := fromAny(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = node
		}
		return ir.FromSlice(elems), nil
	case json.Number:
		return numberNode(t, path)
	default:
		node, err := gomap.ToIR(t)
		if err != nil {
			return nil, fmt.Errorf("%w: at %s: %w", ErrParse, path, err)
		}
		return node, nil
	}
}

func fromAnyMap(m map[string]any, path string) (*ir.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		node, err := fromAny(m[k], path+"."+k)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func numberNode(num json.Number, path string) (*ir.Node, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if ok {
			return ir.FromBigInt(i), nil
		}
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q at %s", ErrParse, s, path)
	}
	return ir.FromFloat(f), nil
}
