package algodispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispatch/internal/layout"
)

var keyFwdRef = Key{Dim: 1, Dir: Forward, Conv: ByReference}

// callRecorder observes backend construction and execution, standing in
// for the diagnostic console output of a real custom backend.
type callRecorder struct {
	constructed int
	inPlace     int
	outOfPlace  int
	strides     []int
}

// scaleBackend multiplies every element by its scale factor. It declares
// contiguous interleaved layout for all calling conventions.
type scaleBackend[T Complex] struct {
	scale T
	caps  Capability
	rec   *callRecorder
}

func (b *scaleBackend[T]) Capabilities() Capability {
	return b.caps
}

func (b *scaleBackend[T]) InPlace(data []T, stride, length int) {
	b.rec.inPlace++
	b.rec.strides = append(b.rec.strides, stride)

	for i := range length {
		data[i*stride] *= b.scale
	}
}

func (b *scaleBackend[T]) OutOfPlace(in []T, inStride int, out []T, outStride int, length int) {
	b.rec.outOfPlace++
	b.rec.strides = append(b.rec.strides, inStride, outStride)

	for i := range length {
		out[i*outStride] = in[i*inStride] * b.scale
	}
}

func (b *scaleBackend[T]) QueryLayout(inout *layout.Layout) {
	inout.Packing = layout.Contiguous
	inout.StorageFormat = layout.Interleaved
}

func (b *scaleBackend[T]) QueryLayout2(in, out *layout.Layout) {
	b.QueryLayout(in)
	b.QueryLayout(out)
}

func scaleEval(name string, prov Provenance, caps Capability, rec *callRecorder, rtValid func(Domain, complex64) bool) Evaluator[complex64] {
	return Evaluator[complex64]{
		Key:        keyFwdRef,
		Name:       name,
		Provenance: prov,
		CTValid:    true,
		RTValid:    rtValid,
		Exec: func(_ Domain, scale complex64) Backend[complex64] {
			rec.constructed++
			return &scaleBackend[complex64]{scale: scale, caps: caps, rec: rec}
		},
	}
}

// newScenarioRegistry builds a registry with a user evaluator valid only
// for length 1024 and a library fallback valid for every length, both
// with multiply-by-scale semantics.
func newScenarioRegistry(t *testing.T, userRec, builtinRec *callRecorder) *Registry[complex64] {
	t.Helper()

	r := NewRegistry[complex64]()
	r.MustRegister(scaleEval("builtin.scale", ProvenanceBuiltin, CapInPlace|CapOutOfPlace, builtinRec,
		func(dom Domain, _ complex64) bool { return dom.Dims() == 1 }))
	r.MustRegister(scaleEval("user.fft1024", ProvenanceUser, CapInPlace|CapOutOfPlace, userRec,
		func(dom Domain, _ complex64) bool { return dom.Size() == 1024 }))

	return r
}

func ones(n int) []complex64 {
	v := make([]complex64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

func TestDispatchPrefersUserBackendAtMatchingLength(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f1, err := NewFft(Forward, NewDomain(1024), complex64(1), WithRegistry(r))
	require.NoError(t, err)
	assert.Equal(t, "user.fft1024", f1.EvaluatorName())
	assert.Equal(t, 1, userRec.constructed)
	assert.Equal(t, 0, builtinRec.constructed)

	f2, err := NewFft(Forward, NewDomain(2048), complex64(1), WithRegistry(r))
	require.NoError(t, err)
	assert.Equal(t, "builtin.scale", f2.EvaluatorName())
	assert.Equal(t, 1, builtinRec.constructed)
}

func TestDispatchIsDeterministic(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f1, err := NewFft(Forward, NewDomain(1024), complex64(2), WithRegistry(r))
	require.NoError(t, err)

	f2, err := NewFft(Forward, NewDomain(1024), complex64(2), WithRegistry(r))
	require.NoError(t, err)

	assert.Equal(t, f1.EvaluatorName(), f2.EvaluatorName())
	assert.Equal(t, 2, userRec.constructed)
}

func TestConstructionFailsWithoutRuntimeValidBackend(t *testing.T) {
	t.Parallel()

	r := NewRegistry[complex64]()

	var rec callRecorder

	r.MustRegister(scaleEval("user.fft1024", ProvenanceUser, CapInPlace|CapOutOfPlace, &rec,
		func(dom Domain, _ complex64) bool { return dom.Size() == 1024 }))

	f, err := NewFft(Forward, NewDomain(999), complex64(1), WithRegistry(r))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrUnsupportedArguments)
	assert.Equal(t, 0, rec.constructed, "no backend may be constructed on dispatch failure")
}

func TestConstructionFailsWithoutTypeCompatibleBackend(t *testing.T) {
	t.Parallel()

	f, err := NewFft(Forward, NewDomain(64), complex64(1), WithRegistry(NewRegistry[complex64]()))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestConstructionRejectsInvalidDomain(t *testing.T) {
	t.Parallel()

	_, err := NewFft(Forward, NewDomain(), complex64(1))
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = NewFft(Forward, NewDomain(0), complex64(1))
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestScaleSemanticsOnBothDispatchPaths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1024, 2048} {
		var userRec, builtinRec callRecorder

		r := newScenarioRegistry(t, &userRec, &builtinRec)

		const s = complex64(1)

		f, err := NewFft(Forward, NewDomain(n), s, WithRegistry(r))
		require.NoError(t, err)

		// Single-argument call with scale 1 leaves the buffer unchanged.
		in := ones(n)
		require.NoError(t, f.Transform(in, 1))

		for i := range in {
			assert.Equal(t, complex64(1), in[i], "n=%d element %d", n, i)
		}

		// Two-argument call writes 1*s everywhere and leaves the input alone.
		out := make([]complex64, n)
		require.NoError(t, f.TransformTo(out, 1, in, 1))

		for i := range out {
			assert.Equal(t, s, out[i], "n=%d element %d", n, i)
			assert.Equal(t, complex64(1), in[i])
		}
	}
}

func TestOutOfPlaceIsIdempotent(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f, err := NewFft(Forward, NewDomain(256), complex64(3), WithRegistry(r))
	require.NoError(t, err)

	in := ones(256)
	out1 := make([]complex64, 256)
	out2 := make([]complex64, 256)

	require.NoError(t, f.TransformTo(out1, 1, in, 1))
	require.NoError(t, f.TransformTo(out2, 1, in, 1))

	assert.Equal(t, out1, out2)
}

func TestAdapterRepacksStridedDataBeforeBackendRuns(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	const n = 4

	f, err := NewFft(Forward, NewDomain(n), complex64(2), WithRegistry(r))
	require.NoError(t, err)

	// Stride-3 view: elements at 0, 3, 6, 9; gaps hold sentinels.
	data := make([]complex64, 10)
	for i := 0; i < n; i++ {
		data[i*3] = complex64(complex(float32(i+1), 0))
	}

	for _, gap := range []int{1, 2, 4, 5, 7, 8} {
		data[gap] = -99
	}

	require.NoError(t, f.Transform(data, 3))

	// The backend declared a contiguous requirement, so it must have been
	// handed a unit-stride view.
	require.NotEmpty(t, builtinRec.strides)
	for _, s := range builtinRec.strides {
		assert.Equal(t, 1, s)
	}

	// Results scattered back to the strided positions, gaps untouched.
	for i := 0; i < n; i++ {
		assert.Equal(t, complex64(complex(float32(2*(i+1)), 0)), data[i*3])
	}

	for _, gap := range []int{1, 2, 4, 5, 7, 8} {
		assert.Equal(t, complex64(-99), data[gap])
	}
}

func TestSingleArgumentFallbackWithoutInPlaceCapability(t *testing.T) {
	t.Parallel()

	r := NewRegistry[complex64]()

	var rec callRecorder

	r.MustRegister(scaleEval("builtin.oop", ProvenanceBuiltin, CapOutOfPlace, &rec,
		func(dom Domain, _ complex64) bool { return dom.Dims() == 1 }))

	f, err := NewFft(Forward, NewDomain(8), complex64(5), WithRegistry(r))
	require.NoError(t, err)

	in := ones(8)
	require.NoError(t, f.Transform(in, 1))

	assert.Equal(t, 0, rec.inPlace)
	assert.Equal(t, 1, rec.outOfPlace, "single-argument call must route through out_of_place plus assignment")

	for i := range in {
		assert.Equal(t, complex64(5), in[i])
	}
}

func TestTwoArgumentCallWithInPlaceOnlyBackend(t *testing.T) {
	t.Parallel()

	r := NewRegistry[complex64]()

	var rec callRecorder

	r.MustRegister(scaleEval("builtin.ip", ProvenanceBuiltin, CapInPlace, &rec,
		func(dom Domain, _ complex64) bool { return dom.Dims() == 1 }))

	f, err := NewFft(Forward, NewDomain(8), complex64(4), WithRegistry(r))
	require.NoError(t, err)

	in := ones(8)
	out := make([]complex64, 8)
	require.NoError(t, f.TransformTo(out, 1, in, 1))

	assert.Equal(t, 1, rec.inPlace)
	assert.Equal(t, 0, rec.outOfPlace)

	for i := range out {
		assert.Equal(t, complex64(4), out[i])
		assert.Equal(t, complex64(1), in[i], "input must not be mutated by a two-argument call")
	}
}

func TestApplyReturnsFreshResult(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f, err := NewFft(Forward, NewDomain(16), complex64(2), WithRegistry(r))
	require.NoError(t, err)

	in := ones(16)

	out, err := f.Apply(in, 1)
	require.NoError(t, err)
	require.Len(t, out, 16)

	for i := range out {
		assert.Equal(t, complex64(2), out[i])
		assert.Equal(t, complex64(1), in[i])
	}
}

func TestArgumentValidation(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f, err := NewFft(Forward, NewDomain(8), complex64(1), WithRegistry(r))
	require.NoError(t, err)

	assert.ErrorIs(t, f.Transform(nil, 1), ErrNilSlice)
	assert.ErrorIs(t, f.Transform(make([]complex64, 8), 0), ErrInvalidStride)
	assert.ErrorIs(t, f.Transform(make([]complex64, 7), 1), ErrLengthMismatch)
	assert.ErrorIs(t, f.Transform(make([]complex64, 8), 2), ErrLengthMismatch)
	assert.ErrorIs(t, f.TransformTo(make([]complex64, 8), 1, nil, 1), ErrNilSlice)
}

func TestTransformAfterCloseFails(t *testing.T) {
	t.Parallel()

	var userRec, builtinRec callRecorder

	r := newScenarioRegistry(t, &userRec, &builtinRec)

	f, err := NewFft(Forward, NewDomain(8), complex64(1), WithRegistry(r))
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "Close must be idempotent")

	assert.ErrorIs(t, f.Transform(make([]complex64, 8), 1), ErrClosed)
}
