package encode

import (
	"bytes"

	"github.com/plistkit/go-plist/ir"
)

// MustString encodes node as a bare fragment, panicking on error.
// Intended for tests and values known to be in the closed native set.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeEnvelope(false)); err != nil {
		panic(err)
	}
	return buf.String()
}
