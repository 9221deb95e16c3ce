// Package fftypes holds the type constraints and small enums shared by the
// dispatch machinery and the public API. Keeping them here avoids import
// cycles between the root package and internal/dispatch.
package fftypes

// Complex is a type constraint for complex element types supported by the
// dispatch mechanism.
type Complex interface {
	~complex64 | ~complex128
}

// Float is a type constraint for the component type of a split complex view
// (float32 for complex64, float64 for complex128).
type Float interface {
	~float32 | ~float64
}
