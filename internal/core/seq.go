package core

import "reflect"

var (
	boolType      = reflect.TypeOf(true)
	intType       = reflect.TypeOf(0)
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	stringType    = reflect.TypeOf("")
	stringPtrType = reflect.TypeOf((*string)(nil))
)

// seqElem returns E when t has the shape of iter.Seq[E]: func(yield func(E) bool).
// Named func types of that shape qualify too.
func seqElem(t reflect.Type) (reflect.Type, bool) {
	yield, ok := yieldFunc(t)
	if !ok || yield.NumIn() != 1 {
		return nil, false
	}
	return yield.In(0), true
}

// indexedSeqElem returns E when t has the shape of iter.Seq2[int, E].
func indexedSeqElem(t reflect.Type) (reflect.Type, bool) {
	yield, ok := yieldFunc(t)
	if !ok || yield.NumIn() != 2 || yield.In(0) != intType {
		return nil, false
	}
	return yield.In(1), true
}

func yieldFunc(t reflect.Type) (reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0) != boolType || yield.IsVariadic() {
		return nil, false
	}
	return yield, true
}

// makeSeq returns a value of the iter.Seq-shaped type t yielding the elements
// of slice in order.
func makeSeq(t reflect.Type, slice reflect.Value) reflect.Value {
	return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		yield := args[0]
		for i := 0; i < slice.Len(); i++ {
			if !yield.Call([]reflect.Value{slice.Index(i)})[0].Bool() {
				break
			}
		}
		return nil
	})
}

// makeIndexedSeq is makeSeq for iter.Seq2[int, E] shaped types.
func makeIndexedSeq(t reflect.Type, slice reflect.Value) reflect.Value {
	return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		yield := args[0]
		for i := 0; i < slice.Len(); i++ {
			if !yield.Call([]reflect.Value{reflect.ValueOf(i), slice.Index(i)})[0].Bool() {
				break
			}
		}
		return nil
	})
}
