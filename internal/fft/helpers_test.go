package fft_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	"github.com/cwbudde/algo-fixfft/internal/reference"
	"github.com/cwbudde/algo-fixfft/internal/tables"
)

// Shared test helper functions used across multiple test files

var allSizes = []int{4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}

func sizeName(n int) string {
	return fmt.Sprintf("n=%d", n)
}

func sineFor(t testing.TB, n int) []int32 {
	t.Helper()

	sine, ok := tables.Lookup(n)
	if !ok {
		t.Fatalf("no sine table for n=%d", n)
	}

	return sine
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}

// forwardBound is the per-component tolerance, in LSBs, of one forward pass.
func forwardBound(n int) float64 {
	return float64(2*log2(n) + 2)
}

func clonePts(pts []fft.Complex) []fft.Complex {
	return append([]fft.Complex(nil), pts...)
}

func assertWithinLSB(t *testing.T, got []fft.Complex, want []complex128, tol float64, format string, args ...any) {
	t.Helper()

	st := reference.Compare(got, want)
	if st.MaxErrLSB > tol {
		t.Fatalf(format+": max error %.2f LSB exceeds %.2f (rms %.2f, snr %.1f dB)",
			append(args, st.MaxErrLSB, tol, st.RMSErrLSB, st.SNRdB)...)
	}
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}

	return d
}
