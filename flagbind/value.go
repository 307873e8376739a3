package flagbind

import (
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind"
	"github.com/ygrebnov/seqbind/constants"
	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/token"
)

// Value is a repeatable pflag value. Set records one raw token per
// occurrence; Bind converts the recorded tokens once, in order, and stores
// the container in the target.
type Value struct {
	binder   *seqbind.Binder
	target   any
	typeName string
	tokens   []token.Token
	changed  bool
}

var (
	_ pflag.Value      = (*Value)(nil)
	_ pflag.SliceValue = (*Value)(nil)
)

// NewValue binds target, a non-nil pointer to a container type.
func NewValue(b *seqbind.Binder, target any) (*Value, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, errors.ErrNilTarget
	}
	shape := b.Classify(rv.Type().Elem())
	if !shape.IsContainer() {
		return nil, errorc.With(
			errors.ErrNotContainer,
			errorc.String(errors.ErrorFieldType, rv.Type().Elem().String()),
		)
	}
	return &Value{
		binder:   b,
		target:   target,
		typeName: flagTypeName(shape.Elem),
	}, nil
}

// String renders the recorded tokens.
func (v *Value) String() string {
	return "[" + strings.Join(token.Values(v.tokens), ",") + "]"
}

// Set records s as one token. Commas are not split.
func (v *Value) Set(s string) error {
	v.tokens = append(v.tokens, token.Of(s))
	v.changed = true
	return nil
}

func (v *Value) Type() string {
	return v.typeName
}

// Append implements pflag.SliceValue.
func (v *Value) Append(s string) error {
	return v.Set(s)
}

// Replace implements pflag.SliceValue.
func (v *Value) Replace(values []string) error {
	v.tokens = token.Strings(values...)
	v.changed = true
	return nil
}

// GetSlice implements pflag.SliceValue.
func (v *Value) GetSlice() []string {
	return token.Values(v.tokens)
}

// Tokens returns a copy of the recorded tokens.
func (v *Value) Tokens() []token.Token {
	return slices.Clone(v.tokens)
}

// Changed reports whether any token was recorded.
func (v *Value) Changed() bool {
	return v.changed
}

// Bind materializes the recorded tokens into the target. The target keeps
// its previous value when no token was recorded or conversion fails.
func (v *Value) Bind() error {
	if !v.changed {
		return nil
	}
	_, err := v.binder.Set(v.target, v.tokens)
	return err
}

func flagTypeName(elem reflect.Type) string {
	name := elem.Name()
	if name == "" {
		return constants.FlagTypeUnknown
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + constants.FlagTypeSuffix
}
