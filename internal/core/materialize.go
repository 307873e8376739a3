package core

import (
	"reflect"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/token"
)

// Materialize builds a value of t from tokens. The boolean result is false
// when t is not a container; the caller then binds t as a scalar.
// Errors returned by cv are passed through unchanged. A nil cv means
// convert.Literal.
func Materialize(t reflect.Type, tokens []token.Token, cv convert.Converter, cs *Constructors) (reflect.Value, bool, error) {
	if cv == nil {
		cv = convert.Literal
	}

	shape := Classify(t, cs)
	var (
		v   reflect.Value
		err error
	)
	switch shape.Strategy {
	case FixedArray:
		v, err = materializeFixedArray(shape, tokens, cv)
	case StandardSequence:
		v, err = materializeStandardSequence(shape, tokens, cv)
	case CustomConstructor:
		v, err = materializeCustom(shape, tokens, cv, cs)
	default:
		return reflect.Value{}, false, nil
	}
	if err != nil {
		return reflect.Value{}, true, err
	}
	return v, true, nil
}

func materializeFixedArray(shape Shape, tokens []token.Token, cv convert.Converter) (reflect.Value, error) {
	t := shape.Type
	if t.Kind() == reflect.Slice {
		out := reflect.MakeSlice(t, len(tokens), len(tokens))
		if err := fillElements(out, shape.Elem, tokens, cv); err != nil {
			return reflect.Value{}, err
		}
		return out, nil
	}

	// [N]E: tokens fill a prefix, the rest stays zero.
	if len(tokens) > t.Len() {
		return reflect.Value{}, errorc.With(
			errors.ErrArrayLength,
			errorc.String(errors.ErrorFieldType, t.String()),
			errorc.String(errors.ErrorFieldArrayLength, strconv.Itoa(t.Len())),
			errorc.String(errors.ErrorFieldTokenCount, strconv.Itoa(len(tokens))),
		)
	}
	out := reflect.New(t).Elem()
	if err := fillElements(out, shape.Elem, tokens, cv); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func materializeStandardSequence(shape Shape, tokens []token.Token, cv convert.Converter) (reflect.Value, error) {
	t := shape.Type
	if shape.Family == FamilySlicePtr {
		list := reflect.New(t.Elem())
		list.Elem().Set(reflect.MakeSlice(t.Elem(), len(tokens), len(tokens)))
		if err := fillElements(list.Elem(), shape.Elem, tokens, cv); err != nil {
			return reflect.Value{}, err
		}
		if list.Type() != t {
			list = list.Convert(t)
		}
		return list, nil
	}

	elems, err := makeElements(shape.Elem, tokens, cv)
	if err != nil {
		return reflect.Value{}, err
	}
	if shape.Family == FamilyIndexedSeq {
		return makeIndexedSeq(t, elems), nil
	}
	return makeSeq(t, elems), nil
}

func materializeCustom(shape Shape, tokens []token.Token, cv convert.Converter, cs *Constructors) (reflect.Value, error) {
	c := shape.Constructor
	if c == nil {
		// the loose check matched but no constructor accepts shape.Elem
		var err error
		if c, err = cs.Find(shape.Type, shape.Elem); err != nil {
			return reflect.Value{}, err
		}
	}
	elems, err := makeElements(shape.Elem, tokens, cv)
	if err != nil {
		return reflect.Value{}, err
	}
	return c.Call(elems)
}

// makeElements returns a fresh []elem holding the converted tokens.
func makeElements(elem reflect.Type, tokens []token.Token, cv convert.Converter) (reflect.Value, error) {
	out := reflect.MakeSlice(reflect.SliceOf(elem), len(tokens), len(tokens))
	if err := fillElements(out, elem, tokens, cv); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

// fillElements sets dst[i] from tokens[i]. string elements take the raw text
// and *string elements keep absent tokens as nil, both without calling cv.
func fillElements(dst reflect.Value, elem reflect.Type, tokens []token.Token, cv convert.Converter) error {
	for i, tok := range tokens {
		switch elem {
		case stringType:
			dst.Index(i).SetString(tok.Value)
		case stringPtrType:
			if tok.Present {
				s := tok.Value
				dst.Index(i).Set(reflect.ValueOf(&s))
			}
		default:
			v, err := cv.Convert(elem, tok)
			if err != nil {
				return err
			}
			if !v.IsValid() || !v.Type().AssignableTo(elem) {
				return errorc.With(
					errors.ErrConversion,
					errorc.String(errors.ErrorFieldElementType, elem.String()),
					errorc.String(errors.ErrorFieldValueType, valueTypeName(v)),
					errorc.String(errors.ErrorFieldTokenIndex, strconv.Itoa(i)),
				)
			}
			dst.Index(i).Set(v)
		}
	}
	return nil
}

func valueTypeName(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.Type().String()
}
