package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plistkit/go-plist/encode"
	"github.com/plistkit/go-plist/format"
	"github.com/plistkit/go-plist/ir"
)

func TestParseJSON(t *testing.T) {
	node, err := Parse([]byte(`{"b": 1, "a": [true, "x"]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := encode.MustString(node)
	want := strings.Join([]string{
		"<dict>",
		"\t<key>a</key>",
		"\t<array>",
		"\t\t<true/>",
		"\t\t<string>x</string>",
		"\t</array>",
		"\t<key>b</key>",
		"\t<integer>1</integer>",
		"</dict>",
		"",
	}, "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestParseJSONWideInteger(t *testing.T) {
	node, err := Parse([]byte(`{"n": 123456789012345678901234567890}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n := ir.Get(node, "n")
	if n == nil || n.Type != ir.IntegerType {
		t.Fatalf("n = %v", n)
	}
	if n.Int.String() != "123456789012345678901234567890" {
		t.Errorf("integer width lost: %s", n.Int)
	}
}

func TestParseJSONReal(t *testing.T) {
	node, err := Parse([]byte(`[1.5, 2e3]`))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range node.Values {
		if v.Type != ir.RealType {
			t.Errorf("element %d: got %s, want Real", i, v.Type)
		}
	}
}

func TestParseJSONNull(t *testing.T) {
	_, err := Parse([]byte(`{"x": null}`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestParseYAML(t *testing.T) {
	in := strings.Join([]string{
		"name: alice",
		"age: 30",
		"admin: true",
	}, "\n")
	node, err := Parse([]byte(in), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := encode.MustString(node)
	for _, frag := range []string{
		"<key>admin</key>", "<true/>",
		"<key>age</key>", "<integer>30</integer>",
		"<key>name</key>", "<string>alice</string>",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in:\n%s", frag, got)
		}
	}
}

func TestParseNoXMLReader(t *testing.T) {
	_, err := Parse([]byte(`<plist/>`), ParseFormat(format.XMLFormat))
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestParseBadInput(t *testing.T) {
	_, err := Parse([]byte(`{`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}
