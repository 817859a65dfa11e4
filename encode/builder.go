package encode

import (
	"bytes"
	"strings"
)

// builder accumulates output lines, indenting each appended fragment
// by the current depth. Fragments already carrying the indent unit at
// their start are taken as pre-indented output of a nested call and
// are not indented again. Every appended fragment ends up with exactly
// one trailing newline.
type builder struct {
	buf    bytes.Buffer
	indent string
	depth  int
}

func (b *builder) append(fragments ...string) {
	for _, frag := range fragments {
		b.appendOne(frag)
	}
}

func (b *builder) appendOne(frag string) {
	prefix := strings.Repeat(b.indent, b.depth)
	if b.indent != "" && strings.HasPrefix(frag, b.indent) {
		prefix = ""
	}
	b.buf.WriteString(prefix)
	b.buf.WriteString(frag)
	if !strings.HasSuffix(frag, "\n") {
		b.buf.WriteByte('\n')
	}
}

func (b *builder) raiseIndent() {
	b.depth++
}

func (b *builder) lowerIndent() {
	if b.depth > 0 {
		b.depth--
	}
}

func (b *builder) text() string {
	return b.buf.String()
}
