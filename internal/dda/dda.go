// Package dda is the data access adapter: it reconciles a caller's actual
// buffer arrangement with the layout requirement a backend reported,
// transparently gathering into a scratch view and scattering results back
// on release when the native arrangement does not already satisfy the
// requirement.
package dda

import (
	"github.com/cwbudde/algo-dispatch/internal/fftypes"
	"github.com/cwbudde/algo-dispatch/internal/layout"
)

// Block describes a caller-owned strided view over interleaved complex
// data. Element i lives at Data[i*Stride].
type Block[T fftypes.Complex] struct {
	Data   []T
	Stride int
}

// Layout returns the arrangement of the block as the caller holds it.
func (b Block[T]) Layout() layout.Layout {
	l := layout.Layout{Packing: layout.Contiguous, StorageFormat: layout.Interleaved}
	if b.Stride != 1 {
		l.Packing = layout.Strided
	}

	return l
}

// Handle is a view over a block that satisfies an interleaved layout
// requirement. When the block already satisfied the requirement the
// handle aliases the caller's data; otherwise it owns a contiguous
// scratch copy that Release scatters back.
type Handle[T fftypes.Complex] struct {
	data      []T
	stride    int
	src       Block[T]
	length    int
	copied    bool
	writeback bool
}

// Adapt gives a view of length elements of b satisfying req.
//
// load controls whether the block's current contents are gathered into a
// scratch view (false for pure output buffers); writeback controls
// whether Release scatters the view back into b. Split storage
// requirements go through AdaptSplit; passing one here is a wiring bug.
func Adapt[T fftypes.Complex](b Block[T], length int, req layout.Layout, load, writeback bool) *Handle[T] {
	if req.StorageFormat != layout.Interleaved {
		panic("dda: Adapt called with a split storage requirement")
	}

	if b.Layout().Satisfies(req) {
		return &Handle[T]{data: b.Data, stride: b.Stride, src: b, length: length}
	}

	scratch := make([]T, length)
	if load {
		for i := range length {
			scratch[i] = b.Data[i*b.Stride]
		}
	}

	return &Handle[T]{
		data:      scratch,
		stride:    1,
		src:       b,
		length:    length,
		copied:    true,
		writeback: writeback,
	}
}

// Data returns the adapted view.
func (h *Handle[T]) Data() []T {
	return h.data
}

// Stride returns the element stride of the adapted view.
func (h *Handle[T]) Stride() int {
	return h.stride
}

// Copied reports whether the handle owns a scratch copy rather than
// aliasing the caller's buffer.
func (h *Handle[T]) Copied() bool {
	return h.copied
}

// Release scatters a copied view back into the caller's buffer when
// writeback was requested. Aliasing handles are a no-op.
func (h *Handle[T]) Release() {
	if !h.copied || !h.writeback {
		return
	}

	for i := range h.length {
		h.src.Data[i*h.src.Stride] = h.data[i]
	}
}
