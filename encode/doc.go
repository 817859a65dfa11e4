// Package encode encodes IR nodes to Apple XML property-list text.
//
// # Usage
//
//	// Encode a full document
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode a bare fragment
//	text, err := encode.Dump(node, false)
//
//	// Write a document to disk
//	err := encode.Save(node, "out.plist")
//
// Output is deterministic: dict entries are emitted sorted by key
// string regardless of construction order, nesting is indented one tab
// per level, and <data> payloads wrap at 68 columns.
//
// # Related Packages
//
//   - github.com/plistkit/go-plist/ir - IR representation
//   - github.com/plistkit/go-plist/gomap - Go values to IR
package encode
