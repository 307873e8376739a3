package constants

const Namespace = "seqbind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// MethodAll is the method a custom container exposes to declare its element
// type: All() iter.Seq[E].
const MethodAll = "All"

// Flag value type names reported through pflag.Value.Type.
const (
	FlagTypeSuffix  = "Array"
	FlagTypeUnknown = "values"
)
