package algodispatch

import (
	"github.com/cwbudde/algo-dispatch/internal/dispatch"
	"github.com/cwbudde/algo-dispatch/internal/fftypes"
	"github.com/cwbudde/algo-dispatch/internal/layout"
)

// Complex is a type constraint for complex element types supported by the
// dispatch mechanism. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the component type of a split complex
// view. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Descriptor axes and layout types, re-exported from the internal
// packages that define them.
type (
	Direction     = fftypes.Direction
	Convention    = fftypes.Convention
	Provenance    = fftypes.Provenance
	Domain        = dispatch.Domain
	Key           = dispatch.Key
	Capability    = dispatch.Capability
	Layout        = layout.Layout
	Packing       = layout.Packing
	StorageFormat = layout.StorageFormat
)

// Backend is the capability contract every concrete implementation of an
// operation must satisfy. See internal/dispatch for the full contract.
type Backend[T Complex] = dispatch.Backend[T]

// SplitExecutor is implemented in addition to Backend by backends whose
// layout requirement is split storage.
type SplitExecutor[F Float] = dispatch.SplitExecutor[F]

// Evaluator is a candidate-implementation record: static applicability,
// runtime validity predicate, and backend factory.
type Evaluator[T Complex] = dispatch.Evaluator[T]

// Registry is the ranked evaluator collection dispatch selects from.
type Registry[T Complex] = dispatch.Registry[T]

const (
	Forward = fftypes.Forward
	Inverse = fftypes.Inverse

	ByReference = fftypes.ByReference
	ByValue     = fftypes.ByValue

	ProvenanceUser    = fftypes.ProvenanceUser
	ProvenanceBuiltin = fftypes.ProvenanceBuiltin

	CapInPlace    = dispatch.CapInPlace
	CapOutOfPlace = dispatch.CapOutOfPlace

	Contiguous = layout.Contiguous
	Strided    = layout.Strided

	Interleaved = layout.Interleaved
	Split       = layout.Split
)

// NewDomain builds a Domain from per-dimension extents.
func NewDomain(extents ...int) Domain {
	return dispatch.NewDomain(extents...)
}

// NewRegistry returns an empty registry, for callers that need dispatch
// isolated from the process-wide defaults (typically tests).
func NewRegistry[T Complex]() *Registry[T] {
	return dispatch.New[T]()
}
