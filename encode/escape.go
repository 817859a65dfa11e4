package encode

import "strings"

// xmlReplacer covers the characters the plist DTD cannot take
// literally in character data. Ampersand first so entity output is
// not re-escaped.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeString(v string) string {
	return xmlReplacer.Replace(v)
}
