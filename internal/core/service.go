package core

import (
	"reflect"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/token"
)

// Service binds a constructor registry and a default converter together.
// It holds no per-call state.
type Service struct {
	constructors *Constructors
	converter    convert.Converter
}

// NewService creates a Service. A nil converter means convert.Literal.
func NewService(cs *Constructors, cv convert.Converter) *Service {
	if cs == nil {
		cs = NewConstructors()
	}
	if cv == nil {
		cv = convert.Literal
	}
	return &Service{
		constructors: cs,
		converter:    cv,
	}
}

func (s *Service) Classify(t reflect.Type) Shape {
	return Classify(t, s.constructors)
}

func (s *Service) ElementType(t reflect.Type) reflect.Type {
	return ElementType(t, s.constructors)
}

// Materialize uses the service converter.
func (s *Service) Materialize(t reflect.Type, tokens []token.Token) (reflect.Value, bool, error) {
	return Materialize(t, tokens, s.converter, s.constructors)
}

// MaterializeWith uses cv instead of the service converter.
func (s *Service) MaterializeWith(t reflect.Type, tokens []token.Token, cv convert.Converter) (reflect.Value, bool, error) {
	if cv == nil {
		cv = s.converter
	}
	return Materialize(t, tokens, cv, s.constructors)
}

// Converter returns the service converter.
func (s *Service) Converter() convert.Converter {
	return s.converter
}
