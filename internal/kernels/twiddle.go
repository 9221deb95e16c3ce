package kernels

import (
	"math"

	"github.com/cwbudde/algo-dispatch/internal/fftypes"
)

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// ComputeTwiddleFactors returns count factors exp(sign*2πi*k/n) for
// k = 0..count-1, with sign -1 for the forward transform and +1 for the
// inverse. The radix-2 kernel needs n/2 factors; the direct DFT needs n.
func ComputeTwiddleFactors[T fftypes.Complex](count, n int, inverse bool) []T {
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	tw := make([]T, count)

	switch out := any(tw).(type) {
	case []complex64:
		for k := range count {
			s, c := math.Sincos(sign * TwoPi * float64(k) / float64(n))
			out[k] = complex(float32(c), float32(s))
		}
	case []complex128:
		for k := range count {
			s, c := math.Sincos(sign * TwoPi * float64(k) / float64(n))
			out[k] = complex(c, s)
		}
	}

	return tw
}
