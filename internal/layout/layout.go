// Package layout defines the data-layout requirement descriptor negotiated
// between a frontend operation object and its bound backend. A backend
// reports the Layout it needs through its QueryLayout methods; the data
// access adapter (internal/dda) is responsible for making the caller's
// buffers satisfy it.
package layout

// Packing describes how elements are spaced in memory.
type Packing uint8

const (
	// Contiguous requires unit-stride data with no padding.
	Contiguous Packing = iota
	// Strided tolerates arbitrary positive strides between elements.
	Strided
)

// String returns a human-readable name for the packing.
func (p Packing) String() string {
	switch p {
	case Contiguous:
		return "contiguous"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}

// StorageFormat describes how complex values are stored.
type StorageFormat uint8

const (
	// Interleaved stores real and imaginary parts adjacently (Go's native
	// complex64/complex128 representation).
	Interleaved StorageFormat = iota
	// Split stores real and imaginary parts in two separate arrays.
	Split
)

// String returns a human-readable name for the storage format.
func (f StorageFormat) String() string {
	switch f {
	case Interleaved:
		return "interleaved"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Layout is the requirement a backend places on buffer arrangement.
// These two fields are the entire negotiation surface between backends and
// the data access adapter.
type Layout struct {
	Packing       Packing
	StorageFormat StorageFormat
}

// Satisfies reports whether data arranged as l meets the requirement req.
// Contiguous data satisfies a Strided requirement, never the reverse.
func (l Layout) Satisfies(req Layout) bool {
	if req.Packing == Contiguous && l.Packing != Contiguous {
		return false
	}

	return l.StorageFormat == req.StorageFormat
}

// String returns "packing/format", e.g. "contiguous/interleaved".
func (l Layout) String() string {
	return l.Packing.String() + "/" + l.StorageFormat.String()
}
