package encode

import (
	"os"

	"github.com/plistkit/go-plist/ir"
)

// Save encodes node as a full plist document and writes it to path,
// creating or truncating the file. The file handle is released on all
// exit paths; filesystem errors are returned unmodified.
func Save(node *ir.Node, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := Encode(node, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
