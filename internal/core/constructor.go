package core

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/constants"
	"github.com/ygrebnov/seqbind/errors"
)

// ParamShape is the shape of the single parameter a constructor accepts.
type ParamShape int

const (
	// ParamSlice is []E, or ...E for variadic constructors.
	ParamSlice ParamShape = iota + 1
	// ParamSeq is iter.Seq[E].
	ParamSeq
)

func (p ParamShape) String() string {
	switch p {
	case ParamSlice:
		return "slice"
	case ParamSeq:
		return "seq"
	default:
		return "invalid"
	}
}

// Constructor describes a registered single-argument constructor of a
// custom container type.
type Constructor struct {
	fn reflect.Value

	// Type is the container type the constructor returns.
	Type     reflect.Type
	Param    reflect.Type
	Shape    ParamShape
	Elem     reflect.Type
	Variadic bool
	// Fallible constructors return (T, error).
	Fallible bool
}

// NewConstructor validates fn and describes it. fn must have one of the forms
//
//	func([]E) T, func(...E) T, func(iter.Seq[E]) T
//
// optionally returning (T, error). T must not be an interface, a string type,
// or a type Classify already builds without a constructor (slices, arrays,
// iter.Seq, iter.Seq2 and *[]E).
func NewConstructor(fn any) (*Constructor, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, errors.ErrInvalidConstructor
	}
	ft := rv.Type()
	invalid := func() error {
		return errorc.With(
			errors.ErrInvalidConstructor,
			errorc.String(errors.ErrorFieldType, ft.String()),
		)
	}

	if ft.NumIn() != 1 {
		return nil, invalid()
	}
	c := &Constructor{fn: rv, Param: ft.In(0), Variadic: ft.IsVariadic()}

	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
		c.Fallible = true
	default:
		return nil, invalid()
	}
	c.Type = ft.Out(0)
	if !constructible(c.Type) {
		return nil, invalid()
	}

	if c.Param.Kind() == reflect.Slice {
		c.Shape = ParamSlice
		c.Elem = c.Param.Elem()
	} else if elem, ok := seqElem(c.Param); ok {
		c.Shape = ParamSeq
		c.Elem = elem
	} else {
		return nil, invalid()
	}
	return c, nil
}

// Call invokes the constructor with elems, a []E buffer, adapted to the
// recorded parameter shape.
func (c *Constructor) Call(elems reflect.Value) (reflect.Value, error) {
	var out []reflect.Value
	switch c.Shape {
	case ParamSlice:
		arg := elems
		if arg.Type() != c.Param {
			arg = arg.Convert(c.Param)
		}
		if c.Variadic {
			out = c.fn.CallSlice([]reflect.Value{arg})
		} else {
			out = c.fn.Call([]reflect.Value{arg})
		}
	case ParamSeq:
		out = c.fn.Call([]reflect.Value{makeSeq(c.Param, elems)})
	default:
		return reflect.Value{}, errors.ErrInvalidConstructor
	}

	if c.Fallible && !out[1].IsNil() {
		return reflect.Value{}, errorc.With(
			errors.ErrConstructor,
			errorc.String(errors.ErrorFieldType, c.Type.String()),
			errorc.Error(errors.ErrorFieldCause, out[1].Interface().(error)),
		)
	}
	return out[0], nil
}

// String returns the constructor signature.
func (c *Constructor) String() string {
	return c.fn.Type().String()
}

// constructible reports whether values of t may come from a constructor.
func constructible(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Interface, reflect.String, reflect.Slice, reflect.Array:
		return false
	}
	_, _, standard := standardFamily(t)
	return !standard
}

// Constructors is a registry of custom container constructors keyed by the
// container type. Registration order is kept per type.
type Constructors struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]*Constructor
}

func NewConstructors() *Constructors {
	return &Constructors{
		byType: make(map[reflect.Type][]*Constructor),
	}
}

// Add registers c. A second constructor with the same container and
// parameter types is rejected.
func (cs *Constructors) Add(c *Constructor) error {
	if c == nil {
		return errors.ErrInvalidConstructor
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for _, existing := range cs.byType[c.Type] {
		if existing.Param == c.Param {
			return errorc.With(
				errors.ErrDuplicateConstructor,
				errorc.String(errors.ErrorFieldType, c.Type.String()),
				errorc.String(errors.ErrorFieldParamType, c.Param.String()),
			)
		}
	}
	cs.byType[c.Type] = append(cs.byType[c.Type], c)
	return nil
}

// For returns the constructors registered for t in registration order.
func (cs *Constructors) For(t reflect.Type) []*Constructor {
	if cs == nil {
		return nil
	}
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return slices.Clone(cs.byType[t])
}

// hasSuitableConstructor is the loose check: t may be constructed and some
// constructor accepts a slice or a sequence, whatever its element type.
// It returns the first such constructor.
func (cs *Constructors) hasSuitableConstructor(t reflect.Type) (*Constructor, bool) {
	if !constructible(t) {
		return nil, false
	}
	for _, c := range cs.For(t) {
		if c.Shape == ParamSlice || c.Shape == ParamSeq {
			return c, true
		}
	}
	return nil, false
}

// Find is the strict match: the single constructor of t whose parameter
// element type is exactly elem. Constructors accepting other element types
// are ignored even when registered first.
func (cs *Constructors) Find(t, elem reflect.Type) (*Constructor, error) {
	candidates := cs.For(t)
	var matches []*Constructor
	if constructible(t) {
		for _, c := range candidates {
			if c.Elem == elem {
				matches = append(matches, c)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errorc.With(
			errors.ErrShapeMismatch,
			errorc.String(errors.ErrorFieldType, typeName(t)),
			errorc.String(errors.ErrorFieldElementType, typeName(elem)),
			errorc.String(errors.ErrorFieldAvailableTypes, paramTypeNames(candidates)),
		)
	default:
		return nil, errorc.With(
			errors.ErrAmbiguousConstructor,
			errorc.String(errors.ErrorFieldType, typeName(t)),
			errorc.String(errors.ErrorFieldElementType, typeName(elem)),
			errorc.String(errors.ErrorFieldAvailableTypes, paramTypeNames(matches)),
		)
	}
}

// declaredElem returns E when t, or *t, has the method All() iter.Seq[E].
func declaredElem(t reflect.Type) (reflect.Type, bool) {
	for _, typ := range []reflect.Type{t, reflect.PointerTo(t)} {
		m, ok := typ.MethodByName(constants.MethodAll)
		if !ok {
			continue
		}
		// method types of concrete types include the receiver
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if elem, ok := seqElem(m.Type.Out(0)); ok {
			return elem, true
		}
	}
	return nil, false
}

func paramTypeNames(cs []*Constructor) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Param.String())
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
