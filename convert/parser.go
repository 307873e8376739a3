package convert

import (
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/seqbind/errors"
)

// Parser turns the text of one token into a value of Type.
type Parser interface {
	Type() reflect.Type
	Parse(string) (any, error)
}

// ParseFunc parses one token into a T.
type ParseFunc[T any] func(string) (T, error)

type genericParser[T any] struct {
	parse ParseFunc[T]
}

func (gp genericParser[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (gp genericParser[T]) Parse(s string) (any, error) { return gp.parse(s) }

// NewParser wraps fn into a Parser for T.
func NewParser[T any](fn ParseFunc[T]) (Parser, error) {
	if fn == nil {
		return nil, errors.ErrInvalidParser
	}
	return genericParser[T]{parse: fn}, nil
}

// NewYAMLParser returns a Parser decoding each token as an inline YAML
// document into a T, e.g. `{name: api, port: 8080}`. JSON is accepted too.
func NewYAMLParser[T any]() Parser {
	return genericParser[T]{parse: func(s string) (T, error) {
		var v T
		if err := yaml.Unmarshal([]byte(s), &v); err != nil {
			return v, err
		}
		return v, nil
	}}
}
