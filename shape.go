package seqbind

import "github.com/ygrebnov/seqbind/internal/core"

type (
	// Shape is the classification of a target type.
	Shape = core.Shape
	// Strategy is the way a container is built.
	Strategy = core.Strategy
	// Family identifies the container of a StandardSequence.
	Family = core.Family
	// Constructor describes a registered custom container constructor.
	Constructor = core.Constructor
)

const (
	Unsupported       = core.Unsupported
	FixedArray        = core.FixedArray
	StandardSequence  = core.StandardSequence
	CustomConstructor = core.CustomConstructor
)

const (
	FamilySeq        = core.FamilySeq
	FamilyIndexedSeq = core.FamilyIndexedSeq
	FamilySlicePtr   = core.FamilySlicePtr
)
