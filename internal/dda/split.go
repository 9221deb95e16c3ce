package dda

import "github.com/cwbudde/algo-dispatch/internal/fftypes"

// SplitHandle exposes a split-storage view (separate real and imaginary
// component slices) of an interleaved block. F must be the component type
// of T: float32 for complex64, float64 for complex128.
type SplitHandle[T fftypes.Complex, F fftypes.Float] struct {
	Re, Im []F

	src       Block[T]
	length    int
	writeback bool
}

// AdaptSplit builds a split view of length elements of b. load and
// writeback behave as in Adapt. The view is always a copy; split storage
// can never alias Go's interleaved complex slices.
func AdaptSplit[T fftypes.Complex, F fftypes.Float](b Block[T], length int, load, writeback bool) *SplitHandle[T, F] {
	h := &SplitHandle[T, F]{
		Re:        make([]F, length),
		Im:        make([]F, length),
		src:       b,
		length:    length,
		writeback: writeback,
	}

	if load {
		h.gather()
	}

	return h
}

func (h *SplitHandle[T, F]) gather() {
	switch data := any(h.src.Data).(type) {
	case []complex64:
		for i := range h.length {
			c := data[i*h.src.Stride]
			h.Re[i] = F(real(c))
			h.Im[i] = F(imag(c))
		}
	case []complex128:
		for i := range h.length {
			c := data[i*h.src.Stride]
			h.Re[i] = F(real(c))
			h.Im[i] = F(imag(c))
		}
	}
}

// Release recombines the component slices into the caller's interleaved
// buffer when writeback was requested.
func (h *SplitHandle[T, F]) Release() {
	if !h.writeback {
		return
	}

	switch data := any(h.src.Data).(type) {
	case []complex64:
		for i := range h.length {
			data[i*h.src.Stride] = complex(float32(h.Re[i]), float32(h.Im[i]))
		}
	case []complex128:
		for i := range h.length {
			data[i*h.src.Stride] = complex(float64(h.Re[i]), float64(h.Im[i]))
		}
	}
}
