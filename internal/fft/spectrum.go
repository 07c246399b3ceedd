package fft

import "github.com/cwbudde/algo-fixfft/internal/q31"

// SpectrumBin returns bin k (0 <= k < N) of the first (second == false) or
// second half spectrum stored by Reorder. Bins above N/2 are recovered by
// conjugate symmetry.
func SpectrumBin(pts []Complex, second bool, k int) Complex {
	n := len(pts)
	h := n >> 1

	base := 0
	if second {
		base = h
	}

	switch {
	case k == 0:
		return Complex{Re: pts[base].Re}
	case k == h:
		return Complex{Re: pts[base].Im}
	case k < h:
		return pts[base+k]
	default:
		v := pts[base+n-k]
		return Complex{Re: v.Re, Im: q31.Sat(-int64(v.Im))}
	}
}
