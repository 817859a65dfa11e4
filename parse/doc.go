// Package parse loads JSON and YAML documents into the plist IR so
// they can be re-encoded as XML property lists.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout)
//
// # Related Packages
//
//   - github.com/plistkit/go-plist/ir - IR representation
//   - github.com/plistkit/go-plist/encode - Encode IR to plist XML
package parse
