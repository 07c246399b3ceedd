package fixfft

import (
	"fmt"

	"github.com/cwbudde/algo-fixfft/internal/fft"
)

// Spectrum names one of the two half spectra produced by ForwardTwoReals.
type Spectrum int

const (
	First Spectrum = iota
	Second
)

// PackTwoReals writes s1 into dst[i].Re and s2 into dst[i].Im.
func PackTwoReals(dst []Complex, s1, s2 []int32) error {
	if err := validateLength(dst); err != nil {
		return err
	}

	if len(s1) != len(dst) || len(s2) != len(dst) {
		return fmt.Errorf("%w: dst %d, s1 %d, s2 %d", ErrLengthMismatch, len(dst), len(s1), len(s2))
	}

	for i := range dst {
		dst[i] = Complex{Re: s1[i], Im: s2[i]}
	}

	return nil
}

// UnpackTwoReals copies src[i].Re into s1 and src[i].Im into s2.
func UnpackTwoReals(s1, s2 []int32, src []Complex) error {
	if err := validateLength(src); err != nil {
		return err
	}

	if len(s1) != len(src) || len(s2) != len(src) {
		return fmt.Errorf("%w: src %d, s1 %d, s2 %d", ErrLengthMismatch, len(src), len(s1), len(s2))
	}

	for i, p := range src {
		s1[i], s2[i] = p.Re, p.Im
	}

	return nil
}

// SpectrumBin returns bin k, 0 <= k < N, of one spectrum stored by
// ReorderTwoRealInputs or ForwardTwoReals. Bins above N/2 are not stored and
// are recovered by conjugate symmetry.
func SpectrumBin(pts []Complex, which Spectrum, k int) (Complex, error) {
	if err := validateLength(pts); err != nil {
		return Complex{}, err
	}

	if which != First && which != Second {
		return Complex{}, fmt.Errorf("%w: %d", ErrInvalidSpectrum, which)
	}

	if k < 0 || k >= len(pts) {
		return Complex{}, fmt.Errorf("%w: bin %d of %d", ErrLengthMismatch, k, len(pts))
	}

	return fft.SpectrumBin(pts, which == Second, k), nil
}
