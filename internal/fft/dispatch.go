package fft

import "github.com/cwbudde/algo-fixfft/internal/fftypes"

// Kernel transforms pts in place using the quarter-sine table sine.
type Kernel func(pts []Complex, sine []int32)

// Kernels groups the two-real kernels bound by a plan.
type Kernels struct {
	ForwardTwoReals Kernel
	InverseTwoReals Kernel
	Strategy        fftypes.KernelStrategy
}

// SelectKernels returns the kernels for a resolved strategy. KernelAuto is
// treated as KernelOptimised; the planner resolves it before calling here
// when wisdom is available.
func SelectKernels(strategy fftypes.KernelStrategy) Kernels {
	if strategy == fftypes.KernelReference {
		return Kernels{
			ForwardTwoReals: ForwardTwoReals,
			InverseTwoReals: InverseTwoReals,
			Strategy:        fftypes.KernelReference,
		}
	}

	return Kernels{
		ForwardTwoReals: ForwardTwoRealsOptimised,
		InverseTwoReals: InverseTwoReals,
		Strategy:        fftypes.KernelOptimised,
	}
}
