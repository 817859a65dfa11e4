package encode

import "testing"

func TestBuilderIndents(t *testing.T) {
	b := &builder{indent: "\t"}
	b.append("<dict>")
	b.raiseIndent()
	b.append("<key>a</key>", "<integer>1</integer>")
	b.lowerIndent()
	b.append("</dict>")
	want := "<dict>\n\t<key>a</key>\n\t<integer>1</integer>\n</dict>\n"
	if got := b.text(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderPreIndentedFragment(t *testing.T) {
	b := &builder{indent: "\t"}
	b.raiseIndent()
	b.append("\talready indented")
	if got := b.text(); got != "\talready indented\n" {
		t.Errorf("double indent: %q", got)
	}
}

func TestBuilderNewlineIdempotent(t *testing.T) {
	b := &builder{indent: "\t"}
	b.append("line\n")
	b.append("other")
	if got := b.text(); got != "line\nother\n" {
		t.Errorf("got %q", got)
	}
}

func TestBuilderLowerClampsAtZero(t *testing.T) {
	b := &builder{indent: "\t"}
	b.lowerIndent()
	b.lowerIndent()
	b.append("x")
	if got := b.text(); got != "x\n" {
		t.Errorf("negative depth leaked into output: %q", got)
	}
	b.raiseIndent()
	b.append("y")
	if got := b.text(); got != "x\n\ty\n" {
		t.Errorf("raise after clamped lower: %q", got)
	}
}
