package seqbind

import (
	"iter"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/internal/core"
)

// Option configures a Binder at construction time.
type Option func(*Binder)

// WithConverter replaces the element converter. Parsers registered with
// WithParser or WithYAMLElements are ignored when a converter is set.
func WithConverter(cv convert.Converter) Option {
	return func(b *Binder) { b.converter = cv }
}

// WithParser registers fn as the parser of E elements.
func WithParser[E any](fn func(string) (E, error)) Option {
	return func(b *Binder) {
		p, err := convert.NewParser[E](fn)
		if err != nil {
			b.errs = append(b.errs, err)
			return
		}
		b.addParser(p)
	}
}

// WithYAMLElements parses E elements as inline YAML documents.
func WithYAMLElements[E any]() Option {
	return func(b *Binder) { b.addParser(convert.NewYAMLParser[E]()) }
}

// WithConstructor registers fn as a constructor of the container T.
func WithConstructor[T any, E any](fn func([]E) T) Option {
	return func(b *Binder) { b.addConstructor(fn) }
}

// WithFallibleConstructor registers a constructor that may reject its elements.
func WithFallibleConstructor[T any, E any](fn func([]E) (T, error)) Option {
	return func(b *Binder) { b.addConstructor(fn) }
}

// WithSeqConstructor registers a constructor consuming a sequence.
func WithSeqConstructor[T any, E any](fn func(iter.Seq[E]) T) Option {
	return func(b *Binder) { b.addConstructor(fn) }
}

// WithConstructorFunc registers fn, which must be one of
//
//	func([]E) T, func(...E) T, func(iter.Seq[E]) T
//
// optionally returning (T, error).
func WithConstructorFunc(fn any) Option {
	return func(b *Binder) { b.addConstructor(fn) }
}

func (b *Binder) addParser(p convert.Parser) {
	if err := b.parsers.Add(p); err != nil {
		b.errs = append(b.errs, err)
	}
}

func (b *Binder) addConstructor(fn any) {
	c, err := core.NewConstructor(fn)
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	if err := b.constructors.Add(c); err != nil {
		b.errs = append(b.errs, err)
	}
}
