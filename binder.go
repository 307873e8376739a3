package seqbind

import (
	stderrors "errors"
	"reflect"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/internal/core"
	"github.com/ygrebnov/seqbind/token"
)

// Binder classifies parameter types and materializes containers from raw
// tokens. A Binder is safe for concurrent use once New has returned,
// provided its converter is.
type Binder struct {
	constructors *core.Constructors
	parsers      *convert.Registry
	converter    convert.Converter
	service      *core.Service
	errs         []error
}

// New creates a Binder configured by opts. Registration errors from all
// options are joined and returned.
func New(opts ...Option) (*Binder, error) {
	b := &Binder{
		constructors: core.NewConstructors(),
		parsers:      convert.NewRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, stderrors.Join(b.errs...)
	}

	cv := b.converter
	if cv == nil {
		cv = b.parsers
	}
	b.service = core.NewService(b.constructors, cv)
	return b, nil
}

// Classify returns the shape of t.
func (b *Binder) Classify(t reflect.Type) Shape {
	return b.service.Classify(t)
}

// IsContainer reports whether t is a multi-value container.
func (b *Binder) IsContainer(t reflect.Type) bool {
	return b.service.Classify(t).IsContainer()
}

// ElementType returns the element type of container t, or t itself.
func (b *Binder) ElementType(t reflect.Type) reflect.Type {
	return b.service.ElementType(t)
}

// Materialize builds a value of t from tokens. ok is false when t is not a
// container; the caller should bind it as a scalar.
func (b *Binder) Materialize(t reflect.Type, tokens []token.Token) (v reflect.Value, ok bool, err error) {
	return b.service.Materialize(t, tokens)
}

// MaterializeWith is Materialize with an explicit element converter.
func (b *Binder) MaterializeWith(t reflect.Type, tokens []token.Token, cv convert.Converter) (reflect.Value, bool, error) {
	return b.service.MaterializeWith(t, tokens, cv)
}

// Set materializes tokens into the value target points to.
// ok is false, and target untouched, when the pointed type is not a container.
func (b *Binder) Set(target any, tokens []token.Token) (ok bool, err error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, errors.ErrNilTarget
	}
	v, ok, err := b.Materialize(rv.Type().Elem(), tokens)
	if err != nil || !ok {
		return ok, err
	}
	rv.Elem().Set(v)
	return true, nil
}

// Converter returns the element converter used by Materialize.
func (b *Binder) Converter() convert.Converter {
	return b.service.Converter()
}

// MaterializeAs is the typed form of Binder.Materialize.
func MaterializeAs[T any](b *Binder, tokens []token.Token) (T, bool, error) {
	var zero T
	v, ok, err := b.Materialize(reflect.TypeOf((*T)(nil)).Elem(), tokens)
	if err != nil || !ok {
		return zero, ok, err
	}
	return v.Interface().(T), true, nil
}
