// Package kernels holds the pure-Go transform kernels used by the
// built-in backend: an iterative radix-2 DIT path for power-of-two
// lengths and a direct DFT fallback for everything else.
package kernels

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
