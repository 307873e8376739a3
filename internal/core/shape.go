package core

import "reflect"

// Strategy is the way a container instance is built from tokens.
type Strategy int

const (
	// Unsupported means the type is not container-like; bind it as a scalar.
	Unsupported Strategy = iota
	// FixedArray covers slices and arrays of the element type.
	FixedArray
	// StandardSequence covers iter.Seq[E], iter.Seq2[int, E] and *[]E.
	StandardSequence
	// CustomConstructor covers types built by a registered constructor.
	CustomConstructor
)

func (s Strategy) String() string {
	switch s {
	case FixedArray:
		return "FixedArray"
	case StandardSequence:
		return "StandardSequence"
	case CustomConstructor:
		return "CustomConstructor"
	default:
		return "Unsupported"
	}
}

// Family identifies the designated container of a StandardSequence.
type Family int

const (
	NoFamily Family = iota
	// FamilySeq is iter.Seq[E].
	FamilySeq
	// FamilyIndexedSeq is iter.Seq2[int, E].
	FamilyIndexedSeq
	// FamilySlicePtr is *[]E.
	FamilySlicePtr
)

func (f Family) String() string {
	switch f {
	case FamilySeq:
		return "iter.Seq"
	case FamilyIndexedSeq:
		return "iter.Seq2"
	case FamilySlicePtr:
		return "*[]E"
	default:
		return ""
	}
}

// Shape is the classification of a target type.
// Elem is nil iff Strategy is Unsupported.
type Shape struct {
	Strategy Strategy
	Type     reflect.Type
	Elem     reflect.Type
	// Family is set for StandardSequence.
	Family Family
	// Constructor is set for CustomConstructor when exactly one registered
	// constructor accepts Elem.
	Constructor *Constructor
}

// IsContainer reports whether the shape describes a multi-value container.
func (s Shape) IsContainer() bool {
	return s.Strategy != Unsupported
}
