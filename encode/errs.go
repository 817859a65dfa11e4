package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")

	// ErrScalarKind signals a scalar node whose kind has no tag name.
	// Unreachable through Encode, which pre-classifies every scalar
	// kind; it guards against future kind additions.
	ErrScalarKind = errors.New("unclassifiable scalar kind")

	// ErrSnapshot signals an opaque value for which no generic binary
	// snapshot could be taken.
	ErrSnapshot = errors.New("no binary snapshot available")
)
