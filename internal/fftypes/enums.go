package fftypes

// Direction selects between the forward and inverse variant of an operation.
type Direction uint8

const (
	Forward Direction = iota
	Inverse
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Convention describes how the caller hands buffers to an operation:
// ByReference calls mutate caller-supplied buffers (one- or two-argument
// form), ByValue calls return freshly allocated results.
type Convention uint8

const (
	ByReference Convention = iota
	ByValue
)

// String returns a human-readable name for the calling convention.
func (c Convention) String() string {
	switch c {
	case ByReference:
		return "by_reference"
	case ByValue:
		return "by_value"
	default:
		return "unknown"
	}
}

// Provenance records where an evaluator came from. User-supplied evaluators
// are always tried before library built-ins, so a user registration can
// supersede a built-in for matching arguments without editing library code.
type Provenance uint8

const (
	ProvenanceUser Provenance = iota
	ProvenanceBuiltin
)

// String returns a human-readable name for the provenance tier.
func (p Provenance) String() string {
	switch p {
	case ProvenanceUser:
		return "user"
	case ProvenanceBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}
