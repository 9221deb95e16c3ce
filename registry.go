package algodispatch

import "github.com/cwbudde/algo-dispatch/internal/dispatch"

// DefaultRegistry returns the process-wide registry for element type T.
// Built-in evaluators are registered here during package initialization;
// user evaluators must be registered before the first handle is
// constructed against it.
func DefaultRegistry[T Complex]() *Registry[T] {
	var zero T

	switch any(zero).(type) {
	case complex64:
		return any(dispatch.Registry64).(*Registry[T])
	case complex128:
		return any(dispatch.Registry128).(*Registry[T])
	default:
		panic("algodispatch: unsupported element type")
	}
}

// RegisterEvaluator adds e to the default registry for T. Fails with
// ErrRegistryFrozen once dispatch has begun on that registry.
func RegisterEvaluator[T Complex](e Evaluator[T]) error {
	return DefaultRegistry[T]().Register(e)
}

// MustRegisterEvaluator is RegisterEvaluator that panics on error, for
// static registration in init functions.
func MustRegisterEvaluator[T Complex](e Evaluator[T]) {
	DefaultRegistry[T]().MustRegister(e)
}
