package dispatch

import (
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-dispatch/internal/fftypes"
)

// Registry holds the ranked evaluator entries for one element type.
// Entries are appended during program initialization; the first Select
// freezes the registry, after which registration fails and concurrent
// selection is safe without further coordination.
type Registry[T fftypes.Complex] struct {
	mu      sync.RWMutex
	frozen  bool
	entries []Evaluator[T]
}

// New returns an empty registry. Package-level defaults exist for the
// supported element types; New is mainly useful for isolated registries
// in tests.
func New[T fftypes.Complex]() *Registry[T] {
	return &Registry[T]{}
}

// Default registries, one per element type. Built-in evaluators register
// here during package initialization; user code registers before its
// first frontend construction.
var (
	Registry64  = New[complex64]()
	Registry128 = New[complex128]()
)

// Register appends an evaluator. Returns ErrRegistryFrozen once selection
// has begun, and ErrBadEvaluator for entries without a runtime predicate
// or factory. Among entries of the same provenance, later registrations
// are tried first, so a more specific evaluator registered later
// overrides an earlier default.
func (r *Registry[T]) Register(e Evaluator[T]) error {
	if e.RTValid == nil || e.Exec == nil {
		return errors.Wrap(ErrBadEvaluator, e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Wrap(ErrRegistryFrozen, e.Name)
	}

	r.entries = append(r.entries, e)
	klog.V(2).Infof("dispatch: registered %s evaluator %q for %s", e.Provenance, e.Name, e.Key)

	return nil
}

// MustRegister is Register that panics on error, for static registration
// in init functions where failure is a programming error.
func (r *Registry[T]) MustRegister(e Evaluator[T]) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Select picks the evaluator for the given descriptor and construction
// arguments: entries matching key with CTValid true are tried in
// provenance order (user before builtin), most recently registered first
// within a tier, and the first whose RTValid holds wins. Selection is
// deterministic for a fixed registry and identical arguments.
//
// The first call freezes the registry.
func (r *Registry[T]) Select(key Key, dom Domain, scale T) (Evaluator[T], error) {
	r.freeze()

	r.mu.RLock()
	defer r.mu.RUnlock()

	compatible := false

	for _, prov := range []fftypes.Provenance{fftypes.ProvenanceUser, fftypes.ProvenanceBuiltin} {
		for i := len(r.entries) - 1; i >= 0; i-- {
			e := r.entries[i]
			if e.Key != key || e.Provenance != prov || !e.CTValid {
				continue
			}

			compatible = true

			if e.RTValid(dom, scale) {
				klog.V(2).Infof("dispatch: %s size=%d selected %s evaluator %q", key, dom.Size(), e.Provenance, e.Name)
				return e, nil
			}
		}
	}

	if !compatible {
		return Evaluator[T]{}, errors.Wrapf(ErrNoBackend, "%s", key)
	}

	return Evaluator[T]{}, errors.Wrapf(ErrUnsupportedArguments, "%s size=%d", key, dom.Size())
}

func (r *Registry[T]) freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

// Frozen reports whether selection has begun on this registry.
func (r *Registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}
