package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/errors"
)

const prefixLength = 3

// WrappedArray is a read-only container built from the bound items.
type WrappedArray[T any] struct {
	items []T
}

func NewWrappedArray[T any](items []T) WrappedArray[T] {
	return WrappedArray[T]{items: items}
}

// All yields the items in the order they were supplied.
func (a WrappedArray[T]) All() iter.Seq[T] {
	return slices.Values(a.items)
}

func (a WrappedArray[T]) Len() int {
	return len(a.items)
}

func (a WrappedArray[T]) String() string {
	parts := make([]string, len(a.items))
	for i, it := range a.items {
		parts[i] = fmt.Sprint(it)
	}
	return strings.Join(parts, ", ")
}

// WrappedItem is one --items value split after its third letter.
type WrappedItem struct {
	Index         int
	First3Letters string
	Rest          string
}

func (w WrappedItem) String() string {
	return fmt.Sprintf("WrappedItem{Index: %d, First3Letters: %s, Rest: %s}", w.Index, w.First3Letters, w.Rest)
}

// sequence numbers items in conversion order. One sequence serves one
// invocation.
type sequence struct {
	next int
}

func (s *sequence) parseItem(raw string) (WrappedItem, error) {
	if utf8.RuneCountInString(raw) < prefixLength {
		return WrappedItem{}, errorc.With(
			errItemTooShort,
			errorc.String(errors.ErrorFieldToken, raw),
		)
	}
	split := 0
	for i := 0; i < prefixLength; i++ {
		_, size := utf8.DecodeRuneInString(raw[split:])
		split += size
	}
	item := WrappedItem{Index: s.next, First3Letters: raw[:split], Rest: raw[split:]}
	s.next++
	return item, nil
}
