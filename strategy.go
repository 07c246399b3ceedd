package fixfft

import (
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-fixfft/internal/cpu"
	"github.com/cwbudde/algo-fixfft/internal/planner"
)

var kernelStrategy atomic.Uint32

// SetKernelStrategy sets the strategy used by plans created afterwards.
// Existing plans keep the kernels they were created with.
func SetKernelStrategy(strategy KernelStrategy) {
	kernelStrategy.Store(uint32(strategy))
}

// GetKernelStrategy returns the strategy used by new plans.
func GetKernelStrategy() KernelStrategy {
	return KernelStrategy(kernelStrategy.Load())
}

// RecordBenchmarkDecision stores the fastest strategy for size n on this CPU
// in the global wisdom cache. Plans created with KernelAuto pick it up.
// KernelAuto itself is not recorded.
func RecordBenchmarkDecision(n int, strategy KernelStrategy) {
	if strategy == KernelAuto || n < MinSize {
		return
	}

	planner.DefaultWisdom.Store(planner.WisdomEntry{
		Key: planner.WisdomKey{
			Size:        n,
			CPUFeatures: cpu.DetectFeatures().Mask(),
		},
		Algorithm: strategy.String(),
		Timestamp: time.Now().UTC(),
	})
}
