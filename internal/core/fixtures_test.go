package core

import (
	"errors"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"testing"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/token"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// wrapped is a custom container declaring its element type through All.
type wrapped[T any] struct {
	items []T
}

func newWrapped[T any](items []T) wrapped[T] { return wrapped[T]{items: items} }

func (w wrapped[T]) All() iter.Seq[T] { return slices.Values(w.items) }

// dual has two constructors; only the []int one matches its declared element type.
type dual struct {
	via  string
	ints []int
}

func (d *dual) All() iter.Seq[int] { return slices.Values(d.ints) }

func dualFromStrings(s []string) *dual { return &dual{via: "strings"} }
func dualFromInts(v []int) *dual       { return &dual{via: "ints", ints: v} }

// onlyStrings declares int elements but can only be built from strings.
type onlyStrings struct{}

func (onlyStrings) All() iter.Seq[int] { return func(func(int) bool) {} }

// bag has no All method; its element type comes from the constructor.
type bag struct {
	values []float64
}

func newBag(values ...float64) bag { return bag{values: values} }

// set is built from a sequence.
type set map[int]struct{}

func newSet(seq iter.Seq[int]) set {
	s := set{}
	for v := range seq {
		s[v] = struct{}{}
	}
	return s
}

// positive rejects negative values.
type positive struct {
	values []int
}

var errNegative = errors.New("negative value")

func newPositive(values []int) (positive, error) {
	for _, v := range values {
		if v < 0 {
			return positive{}, errNegative
		}
	}
	return positive{values: values}, nil
}

type names []string

// sortedInts is a named slice; Classify builds it directly.
type sortedInts []int

func mustConstructors(t *testing.T, fns ...any) *Constructors {
	t.Helper()
	cs := NewConstructors()
	for _, fn := range fns {
		c, err := NewConstructor(fn)
		if err != nil {
			t.Fatalf("NewConstructor(%T): %v", fn, err)
		}
		if err := cs.Add(c); err != nil {
			t.Fatalf("Add(%T): %v", fn, err)
		}
	}
	return cs
}

// countingConverter records every call and delegates to convert.Literal.
type countingConverter struct {
	calls int
}

func (c *countingConverter) Convert(elem reflect.Type, tok token.Token) (reflect.Value, error) {
	c.calls++
	return convert.Literal.Convert(elem, tok)
}

// atoiConverter only handles int elements.
var atoiConverter = convert.ConverterFunc(func(elem reflect.Type, tok token.Token) (reflect.Value, error) {
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(n), nil
})
