package dispatch

import (
	"github.com/cwbudde/algo-dispatch/internal/fftypes"
	"github.com/cwbudde/algo-dispatch/internal/layout"
)

// Capability is a bitmask of the calling conventions a backend instance
// actually implements. The frontend decides once, at bind time, whether a
// single-argument call maps to InPlace or to OutOfPlace plus copy-back.
type Capability uint8

const (
	CapInPlace Capability = 1 << iota
	CapOutOfPlace
)

// Has reports whether all capabilities in c2 are present in c.
func (c Capability) Has(c2 Capability) bool {
	return c&c2 == c2
}

// Backend is the contract every concrete implementation of an operation
// must satisfy. Instances are produced by an evaluator's Exec factory and
// exclusively owned by one frontend operation object.
//
// InPlace and OutOfPlace are only called with data satisfying the Layout
// the backend itself reported through QueryLayout/QueryLayout2; backends
// should treat a violation as a wiring bug and panic rather than recover.
// Numeric semantics (scaling, normalization, exponent sign) are
// backend-specific and documented per backend; the dispatch mechanism is
// agnostic to them.
type Backend[T fftypes.Complex] interface {
	// Capabilities reports which execution entry points the instance
	// supports. At least CapOutOfPlace must be set.
	Capabilities() Capability

	// InPlace mutates length elements of data spaced by stride.
	// Defined only when Capabilities includes CapInPlace.
	InPlace(data []T, stride, length int)

	// OutOfPlace reads length elements from in and writes length elements
	// to out. The buffers must not overlap; in is not mutated.
	OutOfPlace(in []T, inStride int, out []T, outStride int, length int)

	// QueryLayout receives the caller's current single-buffer arrangement
	// and rewrites it to the arrangement the backend requires.
	QueryLayout(inout *layout.Layout)

	// QueryLayout2 is the two-buffer form; input and output requirements
	// may legitimately differ.
	QueryLayout2(in, out *layout.Layout)
}

// SplitExecutor is implemented in addition to Backend by backends whose
// QueryLayout methods request split storage. F is the component type
// matching the backend's element type (float32 for complex64).
type SplitExecutor[F fftypes.Float] interface {
	InPlaceSplit(re, im []F, stride, length int)
	OutOfPlaceSplit(reIn, imIn []F, inStride int, reOut, imOut []F, outStride int, length int)
}
