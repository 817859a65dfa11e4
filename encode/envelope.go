package encode

// Document envelope, fixed by the plist 1.0 DTD.
const (
	xmlDecl    = `<?xml version="1.0" encoding="UTF-8"?>`
	docType    = `<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`
	plistOpen  = `<plist version="1.0">`
	plistClose = `</plist>`
)

// Wrap surrounds an encoded fragment with the XML declaration, the
// DOCTYPE and the root plist element. The fragment is inserted as-is,
// with no re-indentation.
func Wrap(fragment string) string {
	return xmlDecl + "\n" + docType + "\n" + plistOpen + "\n" + fragment + plistClose + "\n"
}
