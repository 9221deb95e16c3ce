package algodispatch

import (
	"errors"

	"github.com/cwbudde/algo-dispatch/internal/dispatch"
)

// Sentinel errors returned by dispatch and transform operations.
var (
	// ErrNoBackend is returned by construction when no registered
	// evaluator is type-compatible with the requested descriptor.
	ErrNoBackend = dispatch.ErrNoBackend

	// ErrUnsupportedArguments is returned by construction when
	// type-compatible evaluators exist but none accepts the concrete
	// arguments (e.g. an unsupported transform length).
	ErrUnsupportedArguments = dispatch.ErrUnsupportedArguments

	// ErrRegistryFrozen is returned when registering an evaluator after
	// dispatch has begun; registries are read-only past initialization.
	ErrRegistryFrozen = dispatch.ErrRegistryFrozen

	// ErrBadEvaluator is returned for registrations missing a runtime
	// predicate or factory.
	ErrBadEvaluator = dispatch.ErrBadEvaluator

	// ErrInvalidDomain is returned when a transform handle is constructed
	// over a domain with no dimensions or a non-positive extent.
	ErrInvalidDomain = errors.New("algodispatch: invalid domain")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodispatch: nil slice")

	// ErrLengthMismatch is returned when a slice is too short for the
	// handle's domain and the given stride.
	ErrLengthMismatch = errors.New("algodispatch: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// (stride < 1 or index computation would overflow).
	ErrInvalidStride = errors.New("algodispatch: invalid stride")

	// ErrClosed is returned when a transform handle is used after Close.
	ErrClosed = errors.New("algodispatch: transform handle closed")
)
