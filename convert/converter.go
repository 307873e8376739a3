package convert

import (
	"reflect"

	"github.com/ygrebnov/seqbind/token"
)

// Converter converts one raw token into one value of the element type elem.
// The returned value must be assignable to elem.
type Converter interface {
	Convert(elem reflect.Type, tok token.Token) (reflect.Value, error)
}

// ConverterFunc adapts an ordinary function to Converter.
type ConverterFunc func(elem reflect.Type, tok token.Token) (reflect.Value, error)

func (f ConverterFunc) Convert(elem reflect.Type, tok token.Token) (reflect.Value, error) {
	return f(elem, tok)
}
