// Package ir provides the in-memory value representation for property
// list documents.
//
// # Overview
//
// A plist value graph is a tree of nodes. Nodes are built
// programmatically, mapped from Go values via the gomap package, or
// loaded from JSON/YAML via the parse package, and then encoded to XML
// plist text with the encode package.
//
// The IR works as a recursive tagged union structure, where payloads
// are placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - StringType: text value
//   - IntegerType: arbitrary-precision integer (math/big)
//   - RealType: 64-bit IEEE float
//   - BoolType: boolean (true/false)
//   - DateType: UTC calendar timestamp
//   - ArrayType: ordered list of nodes
//   - DictType: string-keyed pairs (fields and values)
//   - DataType: raw bytes, inline or from an io.ReadSeeker
//   - OpaqueType: arbitrary host value, encoded best-effort
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For DictType nodes, Fields[i] is the string-typed key for the value
// at Values[i], so there are always as many fields as values. Keys are
// unique by their string content. Insertion order is preserved in the
// node but is irrelevant to encoding: the encoder always emits dict
// entries sorted by key string, so two dicts with the same pairs
// produce identical output.
//
// Integer values use math/big so that values wider than a machine word
// survive without loss.
//
// DataType nodes carry either inline Bytes or a Reader. A Reader is
// rewound to its start and fully consumed once per encode; it must not
// be shared concurrently during that call.
//
// OpaqueType nodes hold any host value. The encoder first checks the
// Mapper capability and otherwise falls back to a generic binary
// snapshot of the value.
//
// # Thread Safety
//
// Node structures are not thread-safe. Encoding assumes exclusive read
// access to the graph for the duration of the call.
//
// # Related Packages
//
//   - github.com/plistkit/go-plist/encode - Encodes nodes to plist XML
//   - github.com/plistkit/go-plist/gomap - Maps Go values to nodes
//   - github.com/plistkit/go-plist/parse - Loads JSON/YAML into nodes
package ir
