package gomap

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/plistkit/go-plist/encode"
	"github.com/plistkit/go-plist/ir"
)

func mustEncode(t *testing.T, v any) string {
	t.Helper()
	node, err := ToIR(v)
	if err != nil {
		t.Fatalf("ToIR: %v", err)
	}
	return encode.MustString(node)
}

func TestToIRScalars(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "hi", "<string>hi</string>\n"},
		{"bool", false, "<false/>\n"},
		{"int", 42, "<integer>42</integer>\n"},
		{"int8", int8(-3), "<integer>-3</integer>\n"},
		{"uint64 beyond int64", uint64(1) << 63, "<integer>9223372036854775808</integer>\n"},
		{"float", 2.5, "<real>2.5</real>\n"},
		{"bytes", []byte("hi"), "<data>\naGk=\n</data>\n"},
		{"time", time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC), "<date>2001-02-03T04:05:06Z</date>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustEncode(t, tt.v); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToIRBigInt(t *testing.T) {
	v, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	got := mustEncode(t, v)
	if got != "<integer>340282366920938463463374607431768211456</integer>\n" {
		t.Errorf("got %q", got)
	}
}

func TestToIRNil(t *testing.T) {
	if _, err := ToIR(nil); err == nil {
		t.Error("expected error for nil")
	}
}

func TestToIRMapSorted(t *testing.T) {
	got := mustEncode(t, map[string]int{"b": 2, "a": 1})
	want := strings.Join([]string{
		"<dict>",
		"\t<key>a</key>",
		"\t<integer>1</integer>",
		"\t<key>b</key>",
		"\t<integer>2</integer>",
		"</dict>",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToIRMapNonStringKeys(t *testing.T) {
	if _, err := ToIR(map[int]string{1: "x"}); err == nil {
		t.Error("expected error for int-keyed map")
	}
}

func TestToIRSlice(t *testing.T) {
	got := mustEncode(t, []any{1, "two", true})
	want := strings.Join([]string{
		"<array>",
		"\t<integer>1</integer>",
		"\t<string>two</string>",
		"\t<true/>",
		"</array>",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s", got)
	}
}

func TestToIRByteArray(t *testing.T) {
	got := mustEncode(t, [2]byte{'h', 'i'})
	if got != "<data>\naGk=\n</data>\n" {
		t.Errorf("got %q", got)
	}
}

func TestToIRReadSeeker(t *testing.T) {
	node, err := ToIR(bytes.NewReader([]byte("hi")))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.DataType {
		t.Fatalf("got %s, want Data", node.Type)
	}
	if got := encode.MustString(node); got != "<data>\naGk=\n</data>\n" {
		t.Errorf("got %q", got)
	}
}

type address struct {
	Street string `plist:"street"`
	City   string `plist:"city,omitempty"`
}

type person struct {
	Name    string  `plist:"name"`
	Age     int     `plist:"age"`
	Home    address `plist:"home"`
	Secret  string  `plist:"-"`
	Plain   string
	ignored string
}

func TestToIRStructTags(t *testing.T) {
	got := mustEncode(t, person{
		Name:    "alice",
		Age:     30,
		Home:    address{Street: "main st"},
		Secret:  "hidden",
		Plain:   "visible",
		ignored: "never",
	})
	if strings.Contains(got, "hidden") || strings.Contains(got, "Secret") {
		t.Errorf("omitted field emitted:\n%s", got)
	}
	if strings.Contains(got, "never") {
		t.Errorf("unexported field emitted:\n%s", got)
	}
	if strings.Contains(got, "city") {
		t.Errorf("omitempty field emitted:\n%s", got)
	}
	for _, frag := range []string{
		"<key>name</key>", "<string>alice</string>",
		"<key>age</key>", "<integer>30</integer>",
		"<key>home</key>", "<key>street</key>",
		"<key>Plain</key>", "<string>visible</string>",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in:\n%s", frag, got)
		}
	}
}

type loginItem struct {
	Label string
}

func (li *loginItem) ToPlist() (*ir.Node, error) {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "Label", Val: ir.FromString(li.Label)},
		{Key: "RunAtLoad", Val: ir.FromBool(true)},
	}), nil
}

func TestToIRMapperCapability(t *testing.T) {
	for _, v := range []any{
		&loginItem{Label: "com.example.agent"},
		loginItem{Label: "com.example.agent"},
	} {
		got := mustEncode(t, v)
		if !strings.Contains(got, "<key>RunAtLoad</key>") {
			t.Errorf("capability not used:\n%s", got)
		}
	}
}

func TestToIRNestedMapperCapability(t *testing.T) {
	got := mustEncode(t, map[string]any{
		"agent": &loginItem{Label: "com.example.agent"},
	})
	if !strings.Contains(got, "<key>RunAtLoad</key>") {
		t.Errorf("capability not used inside container:\n%s", got)
	}
}

func TestToIROpaqueKinds(t *testing.T) {
	node, err := ToIR(map[string]any{"ch": make(chan int)})
	if err != nil {
		t.Fatal(err)
	}
	if inner := ir.Get(node, "ch"); inner == nil || inner.Type != ir.OpaqueType {
		t.Errorf("channel should map to an opaque node, got %v", inner)
	}
}

type cyclic struct {
	Name string   `plist:"name"`
	Next *cyclic  `plist:"next,omitempty"`
	Tags []string `plist:"tags,omitempty"`
}

func TestToIRCycleDetection(t *testing.T) {
	a := &cyclic{Name: "a"}
	b := &cyclic{Name: "b", Next: a}
	a.Next = b
	if _, err := ToIR(a); err == nil {
		t.Error("expected circular reference error")
	}
}

func TestToIRNodePassThrough(t *testing.T) {
	got := mustEncode(t, map[string]any{
		"raw": ir.FromBool(true),
	})
	if !strings.Contains(got, "<true/>") {
		t.Errorf("node not passed through:\n%s", got)
	}
}
