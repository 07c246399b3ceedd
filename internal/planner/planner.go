// Package planner resolves which kernels a plan binds.
package planner

import (
	"github.com/cwbudde/algo-fixfft/internal/cpu"
	"github.com/cwbudde/algo-fixfft/internal/fftypes"
)

// Resolve turns a requested strategy into a concrete one. KernelAuto uses the
// wisdom entry for (n, features) when one exists and KernelOptimised
// otherwise. A nil wisdom is treated as empty.
func Resolve(n int, features cpu.Features, wisdom *Wisdom, strategy fftypes.KernelStrategy) fftypes.KernelStrategy {
	if strategy != fftypes.KernelAuto {
		return strategy
	}

	if wisdom != nil {
		if name, ok := wisdom.LookupWisdom(n, features.Mask()); ok {
			if s, ok := fftypes.ParseKernelStrategy(name); ok && s != fftypes.KernelAuto {
				return s
			}
		}
	}

	return fftypes.KernelOptimised
}
