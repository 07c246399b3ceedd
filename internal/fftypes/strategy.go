// Package fftypes holds the small shared types of the planner and the
// transform engine.
package fftypes

// KernelStrategy controls which two-real forward kernel a plan binds.
type KernelStrategy uint32

const (
	KernelAuto KernelStrategy = iota
	KernelReference
	KernelOptimised
)

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelReference:
		return "reference"
	case KernelOptimised:
		return "optimised"
	default:
		return "unknown"
	}
}

// ParseKernelStrategy is the inverse of String. ok is false for unknown names.
func ParseKernelStrategy(name string) (s KernelStrategy, ok bool) {
	switch name {
	case "auto":
		return KernelAuto, true
	case "reference":
		return KernelReference, true
	case "optimised", "optimized":
		return KernelOptimised, true
	default:
		return KernelAuto, false
	}
}
