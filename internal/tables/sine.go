package tables

import (
	stdmath "math"

	"github.com/cwbudde/algo-fixfft/internal/math"
	"github.com/cwbudde/algo-fixfft/internal/q31"
)

// Supported transform sizes.
const (
	MinSize = 4
	MaxSize = 8192
)

// quarterSine maps each supported size to its table. It is filled once at
// package initialisation and never written afterwards.
var quarterSine = buildQuarterSine()

func buildQuarterSine() map[int][]int32 {
	m := make(map[int][]int32)
	for n := MinSize; n <= MaxSize; n <<= 1 {
		m[n] = QuarterSine(n)
	}

	return m
}

// QuarterSine computes sin(2πk/n) for k = 0..n/4 in Q31. The last entry is
// q31.One. n must be a power of two of at least 4.
func QuarterSine(n int) []int32 {
	q := n >> 2
	table := make([]int32, q+1)

	for k := 1; k < q; k++ {
		table[k] = q31.FromFloat(stdmath.Sin(math.TwoPi * float64(k) / float64(n)))
	}

	table[q] = q31.One

	return table
}

// Lookup returns the shared table for n. The returned slice must not be
// modified.
func Lookup(n int) ([]int32, bool) {
	t, ok := quarterSine[n]
	return t, ok
}

// Sizes returns the supported sizes in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, math.Log2(MaxSize)-math.Log2(MinSize)+1)
	for n := MinSize; n <= MaxSize; n <<= 1 {
		sizes = append(sizes, n)
	}

	return sizes
}
