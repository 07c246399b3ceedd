package fixfft

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/reference"
)

// Shared test helper functions used across multiple test files

var testSizes = []int{4, 8, 64, 512, 8192}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
}

func mustSine(t testing.TB, n int) SineTable {
	t.Helper()

	sine, err := Sine(n)
	if err != nil {
		t.Fatalf("Sine(%d) returned error: %v", n, err)
	}

	return sine
}

func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}

func assertWithinLSB(t *testing.T, got []Complex, want []complex128, tol float64, format string, args ...any) {
	t.Helper()

	st := reference.Compare(got, want)
	if st.MaxErrLSB > tol {
		t.Fatalf(format+": max error %.2f LSB exceeds %.2f (snr %.1f dB)",
			append(args, st.MaxErrLSB, tol, st.SNRdB)...)
	}
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}

	return d
}

// realSpectrum returns the 1/2N-scaled DFT of a real signal.
func realSpectrum(s []int32) []complex128 {
	x := make([]Complex, len(s))
	for i, v := range s {
		x[i].Re = v
	}

	return reference.Forward(reference.ToComplex128(x))
}
