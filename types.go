package fixfft

import (
	"github.com/cwbudde/algo-fixfft/internal/fft"
	"github.com/cwbudde/algo-fixfft/internal/fftypes"
	"github.com/cwbudde/algo-fixfft/internal/q31"
)

// Complex is one fixed-point complex sample. Re and Im are Q1.31: a sign
// bit followed by 31 fraction bits, so One represents 1.0.
type Complex = fft.Complex

// One is the Q1.31 representation of 1.0.
const One = q31.One

// KernelStrategy selects the forward two-real kernel bound by a Plan.
type KernelStrategy = fftypes.KernelStrategy

const (
	// KernelAuto uses benchmark wisdom when available, else KernelOptimised.
	KernelAuto = fftypes.KernelAuto
	// KernelReference composes bit reversal, the butterfly passes and the
	// reorder step one after another.
	KernelReference = fftypes.KernelReference
	// KernelOptimised is bit-identical to KernelReference but hoists
	// twiddle lookups and specialises the first two stages.
	KernelOptimised = fftypes.KernelOptimised
)

// FromFloat converts f to Q1.31, rounding and clamping to [-1, One].
func FromFloat(f float64) int32 {
	return q31.FromFloat(f)
}

// ToFloat converts a Q1.31 value to float64.
func ToFloat(x int32) float64 {
	return q31.ToFloat(x)
}

// ParseKernelStrategy returns the strategy named by String. It also accepts
// "optimized".
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	return fftypes.ParseKernelStrategy(name)
}
