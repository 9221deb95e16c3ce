package kernels

import (
	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/internal/fftypes"
)

// Radix2Kernel is the signature shared by the radix-2 butterfly variants.
type Radix2Kernel[T fftypes.Complex] func(dst, src, twiddle []T, bitrev []int)

// butterflyBlock is the tile width of the blocked butterfly loop, sized
// to cover an AVX-512 register's worth of complex128 lanes twice over.
const butterflyBlock = 8

// SelectRadix2 returns the butterfly variant best suited to the detected
// CPU features together with its name for diagnostics: the blocked loop
// when a vector extension is available, the simple loop otherwise. Both
// variants perform identical arithmetic in identical order.
func SelectRadix2[T fftypes.Complex](features cpu.Features) (Radix2Kernel[T], string) {
	if features.Best() == "generic" {
		return Radix2[T], "simple"
	}

	return Radix2Blocked[T], "blocked"
}

// Radix2Blocked computes the same transform as Radix2 with the butterfly
// loop tiled in blocks of butterflyBlock, keeping each inner loop's
// working set in adjacent memory for wide vector units.
func Radix2Blocked[T fftypes.Complex](dst, src, twiddle []T, bitrev []int) {
	n := len(dst)

	for i, j := range bitrev {
		dst[i] = src[j]
	}

	for span := 1; span < n; span <<= 1 {
		step := n / (2 * span)
		for start := 0; start < n; start += 2 * span {
			for k0 := 0; k0 < span; k0 += butterflyBlock {
				kEnd := min(k0+butterflyBlock, span)
				for k := k0; k < kEnd; k++ {
					w := twiddle[k*step]
					a := dst[start+k]
					b := dst[start+span+k] * w
					dst[start+k] = a + b
					dst[start+span+k] = a - b
				}
			}
		}
	}
}
