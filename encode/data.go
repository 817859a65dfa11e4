package encode

import (
	"encoding/base64"
	"strings"
)

// dataLineLen is the column at which <data> payloads wrap.
const dataLineLen = 68

// wrapData base64-encodes d and re-segments the text into lines of at
// most dataLineLen characters, each newline-terminated, with a leading
// newline before the first line. Empty input yields just the leading
// newline.
func wrapData(d []byte) string {
	enc := base64.StdEncoding.EncodeToString(d)
	sb := &strings.Builder{}
	sb.WriteByte('\n')
	for len(enc) > dataLineLen {
		sb.WriteString(enc[:dataLineLen])
		sb.WriteByte('\n')
		enc = enc[dataLineLen:]
	}
	if len(enc) != 0 {
		sb.WriteString(enc)
		sb.WriteByte('\n')
	}
	return sb.String()
}
