package dispatch

import "errors"

// Sentinel errors surfaced by registry operations. The root package
// re-exports them for callers that only import the public API.
var (
	// ErrNoBackend is returned when no registered evaluator is
	// type-compatible (CTValid) with the requested descriptor. This is a
	// configuration defect: the operation is unimplementable as requested.
	ErrNoBackend = errors.New("algodispatch: no type-compatible backend registered")

	// ErrUnsupportedArguments is returned when type-compatible evaluators
	// exist but none accepts the concrete construction arguments. This is
	// recoverable by the caller (e.g. retry with a supported size).
	ErrUnsupportedArguments = errors.New("algodispatch: no registered backend accepts the arguments")

	// ErrRegistryFrozen is returned by Register once selection has begun;
	// the registry is read-only after program initialization.
	ErrRegistryFrozen = errors.New("algodispatch: registry is frozen")

	// ErrBadEvaluator is returned for registrations missing a runtime
	// predicate or factory.
	ErrBadEvaluator = errors.New("algodispatch: evaluator missing RTValid or Exec")
)
