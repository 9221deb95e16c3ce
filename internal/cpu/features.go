// Package cpu reports the CPU features relevant to kernel selection in the
// built-in backend.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Best returns the name of the widest vector extension available, for
// diagnostics.
func (f Features) Best() string {
	switch {
	case f.HasAVX512:
		return "avx512"
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.HasNEON:
		return "neon"
	default:
		return "generic"
	}
}
