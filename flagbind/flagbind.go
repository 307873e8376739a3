package flagbind

import (
	"reflect"

	"github.com/spf13/pflag"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind"
	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/token"
)

// Flags registers container flags and binds them after parsing.
type Flags struct {
	binder *seqbind.Binder
	names  []string
	values []*Value
}

func New(b *seqbind.Binder) *Flags {
	return &Flags{binder: b}
}

// Var defines a repeatable flag bound to the container target points to.
// It returns errors.ErrNotContainer for scalar targets, which the caller
// should define with the ordinary pflag functions.
func (f *Flags) Var(fs *pflag.FlagSet, target any, name, usage string) error {
	return f.VarP(fs, target, name, "", usage)
}

// VarP is like Var, but accepts a shorthand letter.
func (f *Flags) VarP(fs *pflag.FlagSet, target any, name, shorthand, usage string) error {
	v, err := NewValue(f.binder, target)
	if err != nil {
		return errorc.With(err, errorc.String(errors.ErrorFieldFlag, name))
	}
	fs.VarP(v, name, shorthand, usage)
	f.names = append(f.names, name)
	f.values = append(f.values, v)
	return nil
}

// Bind materializes every flag that was set, in registration order, and
// stops at the first failure.
func (f *Flags) Bind() error {
	for i, v := range f.values {
		if err := v.Bind(); err != nil {
			return errorc.With(err, errorc.String(errors.ErrorFieldFlag, f.names[i]))
		}
	}
	return nil
}

// Args materializes positional arguments into the container target points to.
func Args(b *seqbind.Binder, target any, args []string) error {
	ok, err := b.Set(target, token.Strings(args...))
	if err != nil {
		return err
	}
	if !ok {
		return errorc.With(
			errors.ErrNotContainer,
			errorc.String(errors.ErrorFieldType, reflect.TypeOf(target).Elem().String()),
		)
	}
	return nil
}
