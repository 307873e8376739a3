package core

import "reflect"

// Classify decides how values of t are built from tokens. It only inspects
// the static shape of t and the registered constructors:
//  1. slices and arrays are FixedArray;
//  2. iter.Seq[E], iter.Seq2[int, E] and *[]E are StandardSequence;
//  3. types with a registered slice or sequence constructor are
//     CustomConstructor, with the element type declared by All() iter.Seq[E]
//     or, failing that, taken from the first such constructor;
//  4. everything else is Unsupported.
func Classify(t reflect.Type, cs *Constructors) Shape {
	if t == nil {
		return Shape{}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return Shape{Strategy: FixedArray, Type: t, Elem: t.Elem()}
	}

	if elem, family, ok := standardFamily(t); ok {
		return Shape{Strategy: StandardSequence, Type: t, Elem: elem, Family: family}
	}

	if first, ok := cs.hasSuitableConstructor(t); ok {
		elem, declared := declaredElem(t)
		if !declared {
			elem = first.Elem
		}
		s := Shape{Strategy: CustomConstructor, Type: t, Elem: elem}
		if c, err := cs.Find(t, elem); err == nil {
			s.Constructor = c
		}
		return s
	}

	return Shape{Type: t}
}

// standardFamily matches the well-known growable sequence shapes.
func standardFamily(t reflect.Type) (reflect.Type, Family, bool) {
	if elem, ok := seqElem(t); ok {
		return elem, FamilySeq, true
	}
	if elem, ok := indexedSeqElem(t); ok {
		return elem, FamilyIndexedSeq, true
	}
	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Slice {
		return t.Elem().Elem(), FamilySlicePtr, true
	}
	return nil, NoFamily, false
}

// ElementType returns the element type of a container type, or t itself
// for scalars.
func ElementType(t reflect.Type, cs *Constructors) reflect.Type {
	if s := Classify(t, cs); s.IsContainer() {
		return s.Elem
	}
	return t
}
