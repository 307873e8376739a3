package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrNilType              = namespace.NewError("nil type")
	ErrNilTarget            = namespace.NewError("target must be a non-nil pointer")
	ErrNotContainer         = namespace.NewError("type is not a container")
	ErrInvalidConstructor   = namespace.NewError("constructor must take one []E, ...E or iter.Seq[E] parameter and return a custom container T or (T, error)")
	ErrDuplicateConstructor = namespace.NewError("duplicate constructor")
	ErrAmbiguousConstructor = namespace.NewError("ambiguous constructor")
	ErrShapeMismatch        = namespace.NewError("no constructor accepts the element type")
	ErrConstructor          = namespace.NewError("constructor failed")
	ErrArrayLength          = namespace.NewError("too many tokens for array")
	ErrConversion           = namespace.NewError("cannot convert token")
	ErrUnsupportedElement   = namespace.NewError("unsupported element type")
	ErrInvalidParser        = namespace.NewError("parser must have a non-nil function")
	ErrDuplicateParser      = namespace.NewError("duplicate parser")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentConstructor = "constructor"
)

// Exported structured error field keys. Keep string values stable for log queries.
var (
	ErrorFieldType        = newKey("type")         // seqbind.type
	ErrorFieldElementType = newKey("element_type") // seqbind.element_type
	ErrorFieldValueType   = newKey("value_type")   // seqbind.value_type
	ErrorFieldCause       = newKey("cause")        // seqbind.cause
)

var (
	ErrorFieldToken      = newKey("token")       // seqbind.token
	ErrorFieldTokenIndex = newKey("token_index") // seqbind.token_index
	ErrorFieldTokenCount = newKey("token_count") // seqbind.token_count
)

var (
	ErrorFieldParamType      = newKey("param_type", keySegmentConstructor)      // seqbind.constructor.param_type
	ErrorFieldAvailableTypes = newKey("available_types", keySegmentConstructor) // seqbind.constructor.available_types
)

var (
	ErrorFieldArrayLength = newKey("array_length") // seqbind.array_length
	ErrorFieldFlag        = newKey("flag")         // seqbind.flag
)
