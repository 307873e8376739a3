package convert

import (
	"reflect"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/token"
)

// Registry is a Converter dispatching to parsers registered per element type.
// Element types without a parser are handled by Literal.
type Registry struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]Parser
	order   []Parser // registration order, used for assignable matches
}

func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[reflect.Type]Parser),
	}
}

// Add registers p. Only one parser per type is allowed.
func (r *Registry) Add(p Parser) error {
	if p == nil || p.Type() == nil {
		return errors.ErrInvalidParser
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	typ := p.Type()
	if _, exists := r.parsers[typ]; exists {
		return errorc.With(
			errors.ErrDuplicateParser,
			errorc.String(errors.ErrorFieldElementType, typ.String()),
		)
	}
	r.parsers[typ] = p
	r.order = append(r.order, p)
	return nil
}

// Convert selects a parser for elem:
//  1. The parser registered for exactly elem.
//  2. Otherwise the first registered parser whose type is assignable to elem
//     (interface element types).
//  3. Otherwise the builtin literal conversion.
func (r *Registry) Convert(elem reflect.Type, tok token.Token) (reflect.Value, error) {
	p, ok := r.lookup(elem)
	if !ok {
		return Literal.Convert(elem, tok)
	}
	if !tok.Present {
		return reflect.Zero(elem), nil
	}

	v, err := p.Parse(tok.Value)
	if err != nil {
		return reflect.Value{}, errorc.With(
			errors.ErrConversion,
			errorc.String(errors.ErrorFieldElementType, elem.String()),
			errorc.String(errors.ErrorFieldToken, tok.Value),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		// nil result from a parser of an interface or pointer type
		return reflect.Zero(elem), nil
	}
	return rv, nil
}

func (r *Registry) lookup(elem reflect.Type) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.parsers[elem]; ok {
		return p, true
	}
	if elem == nil || elem.Kind() != reflect.Interface {
		return nil, false
	}
	for _, p := range r.order {
		if p.Type().AssignableTo(elem) {
			return p, true
		}
	}
	return nil, false
}

// Len reports the number of registered parsers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
