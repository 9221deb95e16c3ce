package algodispatch

import "github.com/cwbudde/algo-dispatch/internal/dda"

// Split-storage execution paths. A backend whose QueryLayout methods
// request split storage must also implement SplitExecutor for its
// component type; the adapter converts the caller's interleaved buffers
// to component slices and recombines them on release.

func (f *Fft[T]) transformSplit(data []T, stride int) error {
	n := f.dom.Size()
	block := dda.Block[T]{Data: data, Stride: stride}

	var zero T
	switch any(zero).(type) {
	case complex64:
		se := splitExecutor[T, float32](f)
		h := dda.AdaptSplit[T, float32](block, n, true, true)
		runSplitSingle(f, se, h.Re, h.Im, n)
		h.Release()
	case complex128:
		se := splitExecutor[T, float64](f)
		h := dda.AdaptSplit[T, float64](block, n, true, true)
		runSplitSingle(f, se, h.Re, h.Im, n)
		h.Release()
	}

	return nil
}

func (f *Fft[T]) transformToSplit(dst []T, dstStride int, src []T, srcStride int, reqIn, reqOut Layout) error {
	if reqIn.StorageFormat != reqOut.StorageFormat {
		panic("algodispatch: backend requires mixed storage formats")
	}

	n := f.dom.Size()
	in := dda.Block[T]{Data: src, Stride: srcStride}
	out := dda.Block[T]{Data: dst, Stride: dstStride}

	var zero T
	switch any(zero).(type) {
	case complex64:
		se := splitExecutor[T, float32](f)
		hin := dda.AdaptSplit[T, float32](in, n, true, false)
		hout := dda.AdaptSplit[T, float32](out, n, false, true)
		runSplitPair(f, se, hin, hout, n)
		hout.Release()
	case complex128:
		se := splitExecutor[T, float64](f)
		hin := dda.AdaptSplit[T, float64](in, n, true, false)
		hout := dda.AdaptSplit[T, float64](out, n, false, true)
		runSplitPair(f, se, hin, hout, n)
		hout.Release()
	}

	return nil
}

func runSplitPair[T Complex, F Float](f *Fft[T], se SplitExecutor[F], hin, hout *dda.SplitHandle[T, F], n int) {
	if f.caps.Has(CapOutOfPlace) {
		se.OutOfPlaceSplit(hin.Re, hin.Im, 1, hout.Re, hout.Im, 1, n)
		return
	}

	// In-place-only backend: stage the input in the output view first.
	copy(hout.Re, hin.Re)
	copy(hout.Im, hin.Im)
	se.InPlaceSplit(hout.Re, hout.Im, 1, n)
}

func runSplitSingle[T Complex, F Float](f *Fft[T], se SplitExecutor[F], re, im []F, n int) {
	if f.direct {
		se.InPlaceSplit(re, im, 1, n)
		return
	}

	reOut := make([]F, n)
	imOut := make([]F, n)
	se.OutOfPlaceSplit(re, im, 1, reOut, imOut, 1, n)
	copy(re, reOut)
	copy(im, imOut)
}

// splitExecutor asserts the bound backend's split entry points; a split
// layout requirement without them is a wiring bug in the backend.
func splitExecutor[T Complex, F Float](f *Fft[T]) SplitExecutor[F] {
	se, ok := any(f.backend).(SplitExecutor[F])
	if !ok {
		panic("algodispatch: backend " + f.name + " requires split storage but implements no split executor")
	}

	return se
}
