// Package algodispatch selects, at the moment a transform handle is
// constructed, the most suitable of several competing backend
// implementations for that operation.
//
// Candidate implementations are registered as evaluators: a record
// combining a static type-compatibility flag, a runtime validity
// predicate over the concrete construction arguments, and a factory
// producing a bound backend instance. User-registered evaluators are
// tried strictly before library built-ins, so a specialized or faster
// implementation can supersede the default for matching arguments
// without any change to library code. Once a handle is bound it forwards
// every execution call to its backend, adapting buffer layout to the
// backend's declared requirement on the way.
package algodispatch
