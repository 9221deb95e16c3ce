// Package dispatch implements the construction-time backend selection
// mechanism: an operation descriptor key, evaluator records combining a
// compile-time applicability flag with a runtime validity predicate and a
// backend factory, and a provenance-ranked registry that picks the first
// qualifying evaluator for a given set of construction arguments.
package dispatch

import (
	"strconv"

	"github.com/cwbudde/algo-dispatch/internal/fftypes"
)

// Domain describes the extents of the data an operation is constructed
// over. It is a construction argument, passed unchanged to RTValid and
// Exec; the descriptor key only records its dimensionality.
type Domain struct {
	extents []int
}

// NewDomain builds a Domain from per-dimension extents.
func NewDomain(extents ...int) Domain {
	d := Domain{extents: make([]int, len(extents))}
	copy(d.extents, extents)

	return d
}

// Dims returns the number of dimensions.
func (d Domain) Dims() int {
	return len(d.extents)
}

// Extent returns the size of dimension i.
func (d Domain) Extent(i int) int {
	return d.extents[i]
}

// Size returns the total number of elements (the product of all extents).
func (d Domain) Size() int {
	if len(d.extents) == 0 {
		return 0
	}

	n := 1
	for _, e := range d.extents {
		n *= e
	}

	return n
}

// Valid reports whether every extent is positive and at least one
// dimension is present.
func (d Domain) Valid() bool {
	if len(d.extents) == 0 {
		return false
	}

	for _, e := range d.extents {
		if e < 1 {
			return false
		}
	}

	return true
}

// Key identifies the kind of operation being requested: dimensionality,
// direction, and calling convention. The input and output element types
// complete the descriptor; they are pinned by the registry instance the
// key is looked up in (one registry per element type).
type Key struct {
	Dim  int
	Dir  fftypes.Direction
	Conv fftypes.Convention
}

// String returns e.g. "1d/forward/by_reference".
func (k Key) String() string {
	return strconv.Itoa(k.Dim) + "d/" + k.Dir.String() + "/" + k.Conv.String()
}
