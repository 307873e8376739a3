package seqbind

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ygrebnov/seqbind/convert"
	"github.com/ygrebnov/seqbind/token"
)

// ---- Types under test ----

type tag struct {
	Key, Value string
}

func parseTag(s string) (tag, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return tag{}, fmt.Errorf("tag %q: missing '='", s)
	}
	return tag{Key: k, Value: v}, nil
}

type tagSet struct {
	tags []tag
}

func newTagSet(tags []tag) tagSet { return tagSet{tags: tags} }

func (s tagSet) All() iter.Seq[tag] { return slices.Values(s.tags) }

type endpoint struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func mustNew(t *testing.T, opts ...Option) *Binder {
	t.Helper()
	b, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

// ---- Tests ----

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no options", func(t *testing.T) {
		b := mustNew(t)
		if b.Converter() == nil {
			t.Fatalf("expected a default converter")
		}
	})

	t.Run("registration errors are joined", func(t *testing.T) {
		_, err := New(
			WithConstructorFunc(42),
			WithParser(parseTag),
			WithParser(parseTag),
			WithConstructor(newTagSet),
			WithConstructor(newTagSet),
		)
		if err == nil {
			t.Fatalf("expected error")
		}
		for _, want := range []error{ErrInvalidConstructor, ErrDuplicateParser, ErrDuplicateConstructor} {
			if !errors.Is(err, want) {
				t.Fatalf("expected %v in %v", want, err)
			}
		}
	})

	t.Run("constructor for a type built without one", func(t *testing.T) {
		type sortedInts []int
		_, err := New(WithConstructor(func(v []int) sortedInts {
			slices.Sort(v)
			return sortedInts(v)
		}))
		if !errors.Is(err, ErrInvalidConstructor) {
			t.Fatalf("expected ErrInvalidConstructor, got %v", err)
		}
	})

	t.Run("nil parser func", func(t *testing.T) {
		if _, err := New(WithParser[tag](nil)); err == nil {
			t.Fatalf("expected error for nil parser")
		}
	})
}

func TestBinder_Classify(t *testing.T) {
	t.Parallel()
	b := mustNew(t, WithConstructor(newTagSet))

	tests := []struct {
		typ      reflect.Type
		strategy Strategy
		elem     reflect.Type
	}{
		{typeOf[int](), Unsupported, typeOf[int]()},
		{typeOf[string](), Unsupported, typeOf[string]()},
		{typeOf[[]tag](), FixedArray, typeOf[tag]()},
		{typeOf[iter.Seq[int]](), StandardSequence, typeOf[int]()},
		{typeOf[tagSet](), CustomConstructor, typeOf[tag]()},
	}
	for _, tt := range tests {
		if got := b.Classify(tt.typ).Strategy; got != tt.strategy {
			t.Fatalf("%s: strategy = %s, want %s", tt.typ, got, tt.strategy)
		}
		if got := b.IsContainer(tt.typ); got != (tt.strategy != Unsupported) {
			t.Fatalf("%s: IsContainer = %v", tt.typ, got)
		}
		if got := b.ElementType(tt.typ); got != tt.elem {
			t.Fatalf("%s: ElementType = %s, want %s", tt.typ, got, tt.elem)
		}
	}
}

func TestBinder_Materialize(t *testing.T) {
	t.Parallel()
	b := mustNew(t,
		WithParser(parseTag),
		WithConstructor(newTagSet),
		WithYAMLElements[endpoint](),
	)

	t.Run("custom container of parsed elements", func(t *testing.T) {
		got, ok, err := MaterializeAs[tagSet](b, token.Strings("env=prod", "team=core"))
		if err != nil || !ok {
			t.Fatalf("MaterializeAs: ok=%v err=%v", ok, err)
		}
		want := []tag{{"env", "prod"}, {"team", "core"}}
		if diff := cmp.Diff(want, slices.Collect(got.All())); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml elements", func(t *testing.T) {
		got, ok, err := MaterializeAs[[]endpoint](b, token.Strings(`{name: api, port: 80}`, `{name: db, port: 5432}`))
		if err != nil || !ok {
			t.Fatalf("MaterializeAs: ok=%v err=%v", ok, err)
		}
		want := []endpoint{{"api", 80}, {"db", 5432}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("parser error fails the whole container", func(t *testing.T) {
		_, ok, err := MaterializeAs[tagSet](b, token.Strings("env=prod", "broken"))
		if !ok {
			t.Fatalf("expected container")
		}
		if !errors.Is(err, ErrConversion) {
			t.Fatalf("expected ErrConversion, got %v", err)
		}
	})

	t.Run("scalar is not a container", func(t *testing.T) {
		got, ok, err := MaterializeAs[int](b, token.Strings("1", "2"))
		if ok || err != nil || got != 0 {
			t.Fatalf("got (%v, %v, %v), want (0, false, nil)", got, ok, err)
		}
	})

	t.Run("explicit converter", func(t *testing.T) {
		calls := 0
		cv := convert.ConverterFunc(func(elem reflect.Type, tok token.Token) (reflect.Value, error) {
			calls++
			return reflect.ValueOf(len(tok.Value)), nil
		})
		v, ok, err := b.MaterializeWith(typeOf[[]int](), token.Strings("a", "abc"), cv)
		if err != nil || !ok {
			t.Fatalf("MaterializeWith: ok=%v err=%v", ok, err)
		}
		if diff := cmp.Diff([]int{1, 3}, v.Interface()); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
		if calls != 2 {
			t.Fatalf("calls = %d, want 2", calls)
		}
	})
}

func TestWithConverter(t *testing.T) {
	t.Parallel()
	cv := convert.ConverterFunc(func(elem reflect.Type, tok token.Token) (reflect.Value, error) {
		return reflect.ValueOf(tag{Key: "k", Value: tok.Value}), nil
	})
	b := mustNew(t, WithParser(parseTag), WithConverter(cv))

	got, _, err := MaterializeAs[[]tag](b, token.Strings("no-equals-sign"))
	if err != nil {
		t.Fatalf("MaterializeAs: %v", err)
	}
	if diff := cmp.Diff([]tag{{"k", "no-equals-sign"}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWithSeqAndFallibleConstructors(t *testing.T) {
	t.Parallel()
	type total struct{ sum int }
	type bounded struct{ values []uint8 }
	errEmpty := errors.New("empty")

	b := mustNew(t,
		WithSeqConstructor(func(seq iter.Seq[int]) total {
			var tt total
			for v := range seq {
				tt.sum += v
			}
			return tt
		}),
		WithFallibleConstructor(func(v []uint8) (bounded, error) {
			if len(v) == 0 {
				return bounded{}, errEmpty
			}
			return bounded{values: v}, nil
		}),
	)

	sum, ok, err := MaterializeAs[total](b, token.Strings("1", "2", "3"))
	if err != nil || !ok || sum.sum != 6 {
		t.Fatalf("got (%v, %v, %v), want sum 6", sum, ok, err)
	}

	_, _, err = MaterializeAs[bounded](b, nil)
	if !errors.Is(err, ErrConstructor) {
		t.Fatalf("expected ErrConstructor, got %v", err)
	}
	_, _, err = MaterializeAs[bounded](b, token.Strings("256"))
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion for uint8 overflow, got %v", err)
	}
}

func TestBinder_Set(t *testing.T) {
	t.Parallel()
	b := mustNew(t)

	t.Run("container target", func(t *testing.T) {
		var ports []uint16
		ok, err := b.Set(&ports, token.Strings("80", "443"))
		if err != nil || !ok {
			t.Fatalf("Set: ok=%v err=%v", ok, err)
		}
		if diff := cmp.Diff([]uint16{80, 443}, ports); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scalar target untouched", func(t *testing.T) {
		n := 7
		ok, err := b.Set(&n, token.Strings("1"))
		if ok || err != nil || n != 7 {
			t.Fatalf("got (%v, %v) n=%d", ok, err, n)
		}
	})

	t.Run("error keeps previous value", func(t *testing.T) {
		ports := []uint16{1}
		_, err := b.Set(&ports, token.Strings("x"))
		if !errors.Is(err, ErrConversion) {
			t.Fatalf("expected ErrConversion, got %v", err)
		}
		if diff := cmp.Diff([]uint16{1}, ports); diff != "" {
			t.Fatalf("target changed (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid targets", func(t *testing.T) {
		var nilPtr *[]int
		for _, target := range []any{nil, []int{}, nilPtr} {
			if _, err := b.Set(target, nil); !errors.Is(err, ErrNilTarget) {
				t.Fatalf("%T: expected ErrNilTarget, got %v", target, err)
			}
		}
	})
}
