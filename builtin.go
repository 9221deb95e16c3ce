package algodispatch

import (
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/internal/dispatch"
	"github.com/cwbudde/algo-dispatch/internal/kernels"
	"github.com/cwbudde/algo-dispatch/internal/layout"
)

// builtinDFT is the library-provenance fallback backend: an unnormalized
// DFT computed with a radix-2 DIT kernel for power-of-two lengths and by
// direct evaluation otherwise, with the construction-time scale factor
// applied to every output element.
//
// Semantics: exponent sign is -1 for Forward and +1 for Inverse; no 1/n
// normalization is applied. A round trip therefore needs scale factors
// multiplying to 1/n.
type builtinDFT[T Complex] struct {
	n       int
	scale   T
	twiddle []T
	bitrev  []int                   // nil on the direct-DFT path
	radix2  kernels.Radix2Kernel[T] // nil on the direct-DFT path
	scratch []T
}

func newBuiltinDFT[T Complex](dom Domain, scale T, inverse bool) *builtinDFT[T] {
	n := dom.Size()

	b := &builtinDFT[T]{
		n:       n,
		scale:   scale,
		scratch: make([]T, n),
	}

	features := cpu.DetectFeatures()

	if kernels.IsPowerOf2(n) && n >= 2 {
		b.twiddle = kernels.ComputeTwiddleFactors[T](n/2, n, inverse)
		b.bitrev = kernels.ComputeBitReversalIndices(n)

		var variant string
		b.radix2, variant = kernels.SelectRadix2[T](features)
		klog.V(2).Infof("algodispatch: builtin.dft selected %s butterfly (simd=%s)", variant, features.Best())
	} else {
		b.twiddle = kernels.ComputeTwiddleFactors[T](n, n, inverse)
	}

	klog.V(1).Infof("algodispatch: builtin.dft constructed size=%d inverse=%t radix2=%t simd=%s",
		n, inverse, b.bitrev != nil, features.Best())

	return b
}

func (b *builtinDFT[T]) Capabilities() Capability {
	return CapInPlace | CapOutOfPlace
}

func (b *builtinDFT[T]) InPlace(data []T, stride, length int) {
	b.assertArgs(stride, length)
	b.run(b.scratch, data[:b.n])
	copy(data[:b.n], b.scratch)
}

func (b *builtinDFT[T]) OutOfPlace(in []T, inStride int, out []T, outStride int, length int) {
	b.assertArgs(inStride, length)
	b.assertArgs(outStride, length)
	b.run(out[:b.n], in[:b.n])
}

func (b *builtinDFT[T]) QueryLayout(inout *layout.Layout) {
	inout.Packing = layout.Contiguous
	inout.StorageFormat = layout.Interleaved
}

func (b *builtinDFT[T]) QueryLayout2(in, out *layout.Layout) {
	in.Packing = layout.Contiguous
	in.StorageFormat = layout.Interleaved
	out.Packing = layout.Contiguous
	out.StorageFormat = layout.Interleaved
}

// run computes the transform of src into dst and scales the result.
// dst and src never alias: InPlace stages through the scratch buffer and
// OutOfPlace buffers are non-overlapping by contract.
func (b *builtinDFT[T]) run(dst, src []T) {
	if b.radix2 != nil {
		b.radix2(dst, src, b.twiddle, b.bitrev)
	} else {
		kernels.Naive(dst, src, b.twiddle)
	}

	kernels.Scale(dst, 1, b.n, b.scale)
}

// assertArgs fails fast when the backend is invoked outside the layout it
// declared (unit stride, full length). The adapter makes this unreachable.
func (b *builtinDFT[T]) assertArgs(stride, length int) {
	if stride != 1 || length != b.n {
		panic("algodispatch: builtin.dft invoked outside its declared layout")
	}
}

// registerBuiltin installs the built-in evaluator for every direction and
// calling convention of the 1-D descriptor. CTValid is unconditionally
// true: the backend is type-compatible with any 1-D complex transform;
// the runtime predicate accepts every positive length.
func registerBuiltin[T Complex](r *Registry[T]) {
	for _, dir := range []Direction{Forward, Inverse} {
		for _, conv := range []Convention{ByReference, ByValue} {
			inverse := dir == Inverse

			r.MustRegister(Evaluator[T]{
				Key:        Key{Dim: 1, Dir: dir, Conv: conv},
				Name:       "builtin.dft",
				Provenance: ProvenanceBuiltin,
				CTValid:    true,
				RTValid: func(dom Domain, _ T) bool {
					return dom.Dims() == 1 && dom.Size() >= 1
				},
				Exec: func(dom Domain, scale T) Backend[T] {
					return newBuiltinDFT[T](dom, scale, inverse)
				},
			})
		}
	}
}

func init() {
	registerBuiltin(dispatch.Registry64)
	registerBuiltin(dispatch.Registry128)
}
