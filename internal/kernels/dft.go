package kernels

import "github.com/cwbudde/algo-dispatch/internal/fftypes"

// Radix2 computes an unnormalized radix-2 DIT transform of src into dst.
// len(dst) == len(src) == n must be a power of two; twiddle holds n/2
// factors from ComputeTwiddleFactors and bitrev the permutation from
// ComputeBitReversalIndices. dst and src must not alias.
func Radix2[T fftypes.Complex](dst, src, twiddle []T, bitrev []int) {
	n := len(dst)

	for i, j := range bitrev {
		dst[i] = src[j]
	}

	for span := 1; span < n; span <<= 1 {
		step := n / (2 * span)
		for start := 0; start < n; start += 2 * span {
			for k := range span {
				w := twiddle[k*step]
				a := dst[start+k]
				b := dst[start+span+k] * w
				dst[start+k] = a + b
				dst[start+span+k] = a - b
			}
		}
	}
}

// Naive computes an unnormalized direct O(n²) DFT of src into dst for
// arbitrary lengths. twiddle holds n factors covering the full circle.
// dst and src must not alias.
func Naive[T fftypes.Complex](dst, src, twiddle []T) {
	n := len(dst)

	for k := range n {
		var acc T
		for j := range n {
			acc += src[j] * twiddle[(j*k)%n]
		}

		dst[k] = acc
	}
}

// Scale multiplies length elements of data spaced by stride with s.
func Scale[T fftypes.Complex](data []T, stride, length int, s T) {
	for i := range length {
		data[i*stride] *= s
	}
}

// SameSlice reports whether a and b share the same backing array start.
func SameSlice[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
