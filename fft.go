package algodispatch

import (
	"io"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-dispatch/internal/dda"
)

// Fft is the user-facing transform handle. Construction runs dispatch
// exactly once: the registry is walked in provenance-then-registration
// order and the first evaluator whose static flag and runtime predicate
// both hold provides the backend the handle exclusively owns from then
// on. The handle itself is stateless apart from that binding; all
// per-transform state (twiddles, scratch, tuning) lives in the backend.
//
// A handle is not safe for concurrent use: backends may hold mutable
// scratch state between calls.
type Fft[T Complex] struct {
	key     Key
	dom     Domain
	scale   T
	name    string
	backend Backend[T]
	caps    Capability
	direct  bool // single-argument calls use the backend's true in-place path
	scratch []T  // fallback buffer when the backend lacks a needed path
	closed  bool
}

type fftConfig[T Complex] struct {
	reg  *Registry[T]
	conv Convention
}

// Option configures handle construction.
type Option[T Complex] func(*fftConfig[T])

// WithRegistry runs dispatch against r instead of the process-wide
// default registry for T. Mainly useful for tests.
func WithRegistry[T Complex](r *Registry[T]) Option[T] {
	return func(c *fftConfig[T]) {
		c.reg = r
	}
}

// WithConvention overrides the calling-convention axis of the operation
// descriptor. The default is ByReference.
func WithConvention[T Complex](conv Convention) Option[T] {
	return func(c *fftConfig[T]) {
		c.conv = conv
	}
}

// NewFft constructs a transform handle for the given direction, domain,
// and scale factor. Selection failures are reported here, never at call
// time: ErrNoBackend when nothing type-compatible is registered,
// ErrUnsupportedArguments when no registered backend accepts the
// arguments. The returned handle never rebinds.
func NewFft[T Complex](dir Direction, dom Domain, scale T, opts ...Option[T]) (*Fft[T], error) {
	if !dom.Valid() {
		return nil, errors.Wrapf(ErrInvalidDomain, "dims=%d size=%d", dom.Dims(), dom.Size())
	}

	cfg := fftConfig[T]{reg: DefaultRegistry[T](), conv: ByReference}
	for _, opt := range opts {
		opt(&cfg)
	}

	key := Key{Dim: dom.Dims(), Dir: dir, Conv: cfg.conv}

	eval, err := cfg.reg.Select(key, dom, scale)
	if err != nil {
		return nil, err
	}

	backend := eval.Exec(dom, scale)
	caps := backend.Capabilities()

	if !caps.Has(CapInPlace) && !caps.Has(CapOutOfPlace) {
		panic("algodispatch: backend " + eval.Name + " declares no execution capability")
	}

	f := &Fft[T]{
		key:     key,
		dom:     dom,
		scale:   scale,
		name:    eval.Name,
		backend: backend,
		caps:    caps,
		direct:  caps.Has(CapInPlace),
	}

	if !f.direct {
		f.scratch = make([]T, dom.Size())
	}

	klog.V(1).Infof("algodispatch: bound %q for %s size=%d", eval.Name, key, dom.Size())

	return f, nil
}

// Len returns the total element count of the transform domain.
func (f *Fft[T]) Len() int {
	return f.dom.Size()
}

// Domain returns the domain the handle was constructed over.
func (f *Fft[T]) Domain() Domain {
	return f.dom
}

// EvaluatorName returns the name of the evaluator dispatch selected at
// construction.
func (f *Fft[T]) EvaluatorName() string {
	return f.name
}

// Transform performs the single-argument call form: length elements of
// data spaced by stride are transformed and written back in place. When
// the backend declared in-place capability the call goes straight to it;
// otherwise the result is computed out of place into an internal buffer
// and assigned back.
func (f *Fft[T]) Transform(data []T, stride int) error {
	if err := f.validate(data, stride); err != nil {
		return err
	}

	n := f.dom.Size()

	req := blockLayout(stride)
	f.backend.QueryLayout(&req)

	if req.StorageFormat == Split {
		return f.transformSplit(data, stride)
	}

	h := dda.Adapt(dda.Block[T]{Data: data, Stride: stride}, n, req, true, true)
	assertAdapted(req, h.Stride())

	if f.direct {
		f.backend.InPlace(h.Data(), h.Stride(), n)
	} else {
		f.backend.OutOfPlace(h.Data(), h.Stride(), f.scratch, 1, n)
		for i := range n {
			h.Data()[i*h.Stride()] = f.scratch[i]
		}
	}

	h.Release()

	return nil
}

// TransformTo performs the two-argument call form: length elements read
// from src are transformed into dst. The buffers must not overlap; src
// is left unmodified.
func (f *Fft[T]) TransformTo(dst []T, dstStride int, src []T, srcStride int) error {
	if err := f.validate(src, srcStride); err != nil {
		return err
	}

	if err := f.validate(dst, dstStride); err != nil {
		return err
	}

	n := f.dom.Size()

	reqIn := blockLayout(srcStride)
	reqOut := blockLayout(dstStride)
	f.backend.QueryLayout2(&reqIn, &reqOut)

	if reqIn.StorageFormat == Split || reqOut.StorageFormat == Split {
		return f.transformToSplit(dst, dstStride, src, srcStride, reqIn, reqOut)
	}

	hin := dda.Adapt(dda.Block[T]{Data: src, Stride: srcStride}, n, reqIn, true, false)
	hout := dda.Adapt(dda.Block[T]{Data: dst, Stride: dstStride}, n, reqOut, false, true)
	assertAdapted(reqIn, hin.Stride())
	assertAdapted(reqOut, hout.Stride())

	if f.caps.Has(CapOutOfPlace) {
		f.backend.OutOfPlace(hin.Data(), hin.Stride(), hout.Data(), hout.Stride(), n)
	} else {
		// In-place-only backend: stage the input in the output view first.
		for i := range n {
			hout.Data()[i*hout.Stride()] = hin.Data()[i*hin.Stride()]
		}

		f.backend.InPlace(hout.Data(), hout.Stride(), n)
	}

	hin.Release()
	hout.Release()

	return nil
}

// Apply performs the by-value call form: it allocates a fresh contiguous
// result of Len elements, transforms src into it, and returns it.
func (f *Fft[T]) Apply(src []T, stride int) ([]T, error) {
	dst := make([]T, f.dom.Size())

	if err := f.TransformTo(dst, 1, src, stride); err != nil {
		return nil, err
	}

	return dst, nil
}

// Close releases the bound backend. If the backend holds external
// resources it may implement io.Closer; the handle must not be used
// afterwards.
func (f *Fft[T]) Close() error {
	if f.closed {
		return nil
	}

	f.closed = true

	if c, ok := f.backend.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

func (f *Fft[T]) validate(data []T, stride int) error {
	if f.closed {
		return ErrClosed
	}

	if data == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	n := f.dom.Size()

	maxInt := int(^uint(0) >> 1)
	if n-1 > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	if len(data) < (n-1)*stride+1 {
		return ErrLengthMismatch
	}

	return nil
}

func blockLayout(stride int) Layout {
	l := Layout{Packing: Contiguous, StorageFormat: Interleaved}
	if stride != 1 {
		l.Packing = Strided
	}

	return l
}

// assertAdapted fails fast when an adapted view does not meet the
// backend's declared packing. The adapter exists to make this
// unreachable; hitting it is a wiring bug, not a user-input error.
func assertAdapted(req Layout, stride int) {
	if req.Packing == Contiguous && stride != 1 {
		panic("algodispatch: layout contract violation: contiguous requirement with strided view")
	}
}
