package encode

type EncodeOption func(*EncState)

// EncodeEnvelope controls whether output is wrapped in the document
// header and root plist element. On by default.
func EncodeEnvelope(v bool) EncodeOption {
	return func(es *EncState) { es.envelope = v }
}

// EncodeIndent sets the indent unit, one tab by default.
func EncodeIndent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// Depth sets the initial nesting depth of the fragment.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
