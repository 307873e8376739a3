package seqbind

import "github.com/ygrebnov/seqbind/errors"

// Sentinel errors re-exported for convenience. Use errors.Is to match.
var (
	ErrNilTarget            = errors.ErrNilTarget
	ErrInvalidConstructor   = errors.ErrInvalidConstructor
	ErrDuplicateConstructor = errors.ErrDuplicateConstructor
	ErrAmbiguousConstructor = errors.ErrAmbiguousConstructor
	ErrShapeMismatch        = errors.ErrShapeMismatch
	ErrConstructor          = errors.ErrConstructor
	ErrArrayLength          = errors.ErrArrayLength
	ErrConversion           = errors.ErrConversion
	ErrUnsupportedElement   = errors.ErrUnsupportedElement
	ErrDuplicateParser      = errors.ErrDuplicateParser
)
