package dispatch

import "github.com/cwbudde/algo-dispatch/internal/fftypes"

// Evaluator is a candidate-implementation record for one operation
// descriptor: a static applicability flag, a runtime validity predicate
// over the concrete construction arguments, and a factory producing a
// bound backend instance.
type Evaluator[T fftypes.Complex] struct {
	// Key is the operation descriptor this evaluator applies to.
	Key Key

	// Name identifies the evaluator in diagnostics and registry dumps,
	// e.g. "builtin.dft" or "user.fft1024".
	Name string

	// Provenance ranks the evaluator for selection; user entries are
	// tried strictly before builtin entries.
	Provenance fftypes.Provenance

	// CTValid is a static fact about type compatibility only. It must not
	// depend on runtime argument values; entries with CTValid false are
	// never consulted at selection time.
	CTValid bool

	// RTValid reports whether the backend can handle the concrete
	// construction arguments (e.g. "length is exactly 1024"). It must be
	// pure: side-effect-free and idempotent.
	RTValid func(dom Domain, scale T) bool

	// Exec constructs a new backend instance for arguments that passed
	// RTValid. It may perform expensive setup (twiddle precomputation)
	// and may log, but must not fail for such arguments.
	Exec func(dom Domain, scale T) Backend[T]
}
