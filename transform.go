package fixfft

import (
	"fmt"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

// validateLength checks that pts can be transformed at all.
func validateLength(pts []Complex) error {
	if pts == nil {
		return ErrNilSlice
	}

	if n := len(pts); n < MinSize || !m.IsPowerOf2(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return nil
}

// validateTable checks pts and that sine belongs to the same size.
func validateTable(pts []Complex, sine SineTable) error {
	if err := validateLength(pts); err != nil {
		return err
	}

	if sine.n != len(pts) {
		return fmt.Errorf("%w: %d points with a sine table for %d", ErrLengthMismatch, len(pts), sine.n)
	}

	return nil
}

// BitReverse reorders pts in place so that the sample at index i moves to the
// index with the low log2(N) bits of i reversed. Applying it twice restores
// the original order.
func BitReverse(pts []Complex) error {
	if err := validateLength(pts); err != nil {
		return err
	}

	fft.BitReverse(pts)

	return nil
}

// ForwardComplex computes the forward DFT of pts in place. pts must already
// be in bit-reversed order (see BitReverse); the spectrum is left in natural
// order and scaled by 1/2N, so bin k holds X[k]/2N and no stage saturates
// even for full-scale input.
func ForwardComplex(pts []Complex, sine SineTable) error {
	if err := validateTable(pts, sine); err != nil {
		return err
	}

	fft.Forward(pts, sine.values)

	return nil
}

// InverseComplex computes the inverse DFT of pts in place, multiplied by 2 to
// undo the extra halving of ForwardComplex. pts must already be in
// bit-reversed order; the result is in natural order. Applied
// to the (bit-reversed) output of ForwardComplex it recovers the input.
func InverseComplex(pts []Complex, sine SineTable) error {
	if err := validateTable(pts, sine); err != nil {
		return err
	}

	fft.Inverse(pts, sine.values)

	return nil
}

// ReorderTwoRealInputs splits the ForwardComplex output of two packed real
// signals into their half spectra. Afterwards pts[0:N/2] holds spectrum 1
// and pts[N/2:N] spectrum 2; bins 0 and N/2 of each spectrum are real and
// share the first slot of its half (DC in Re, Nyquist in Im).
func ReorderTwoRealInputs(pts []Complex) error {
	if err := validateLength(pts); err != nil {
		return err
	}

	fft.Reorder(pts)

	return nil
}

// RebuildOneRealInput reverses ReorderTwoRealInputs, producing the full
// natural-order spectrum that InverseComplex (after BitReverse) turns back
// into the packed pair. Bins 0..N/2 are restored exactly and the remaining
// bins within 1 LSB.
func RebuildOneRealInput(pts []Complex) error {
	if err := validateLength(pts); err != nil {
		return err
	}

	fft.Rebuild(pts)

	return nil
}

// ForwardTwoReals transforms two real signals at once. On entry pts[i].Re is
// sample i of signal 1 and pts[i].Im sample i of signal 2; on return pts
// holds both half spectra in the ReorderTwoRealInputs layout.
func ForwardTwoReals(pts []Complex, sine SineTable) error {
	if err := validateTable(pts, sine); err != nil {
		return err
	}

	fft.ForwardTwoReals(pts, sine.values)

	return nil
}

// ForwardTwoRealsOptimised is ForwardTwoReals with a faster butterfly
// schedule. The output is bit-identical.
func ForwardTwoRealsOptimised(pts []Complex, sine SineTable) error {
	if err := validateTable(pts, sine); err != nil {
		return err
	}

	fft.ForwardTwoRealsOptimised(pts, sine.values)

	return nil
}

// InverseTwoReals recovers both real signals from the output of
// ForwardTwoReals: signal 1 in Re and signal 2 in Im.
func InverseTwoReals(pts []Complex, sine SineTable) error {
	if err := validateTable(pts, sine); err != nil {
		return err
	}

	fft.InverseTwoReals(pts, sine.values)

	return nil
}
