package fft

import "github.com/cwbudde/algo-fixfft/internal/q31"

// ForwardTwoReals transforms two real signals packed as re = signal 1 and
// im = signal 2 and leaves their half spectra in the layout of Reorder.
func ForwardTwoReals(pts []Complex, sine []int32) {
	BitReverse(pts)
	Forward(pts, sine)
	Reorder(pts)
}

// ForwardTwoRealsOptimised produces bit-identical output to ForwardTwoReals.
//
// The first two stages only use the twiddles 1 and -j and are run as
// dedicated passes; later stages look each twiddle up once per stage and
// sweep every group with it.
func ForwardTwoRealsOptimised(pts []Complex, sine []int32) {
	BitReverse(pts)
	forwardHoisted(pts, sine)
	Reorder(pts)
}

// InverseTwoReals recovers the two real signals from the layout produced by
// ForwardTwoReals: signal 1 in re and signal 2 in im.
func InverseTwoReals(pts []Complex, sine []int32) {
	Rebuild(pts)
	BitReverse(pts)
	Inverse(pts, sine)
}

// forwardHoisted is Forward with the twiddle lookup moved out of the group
// loop. Rounding is identical: every product goes through the same
// expressions CMul evaluates when one twiddle component is zero.
func forwardHoisted(pts []Complex, sine []int32) {
	n := len(pts)
	q := n >> 2
	one := sine[q]

	// Stage 1: w = 1, scaled by 1/4.
	for i := 0; i < n; i += 2 {
		a, b := &pts[i], &pts[i+1]
		tr, ti := q31.Mul(b.Re, one), q31.Mul(b.Im, one)
		ar, ai := int64(a.Re), int64(a.Im)

		a.Re, a.Im = q31.Quarter(ar+int64(tr)), q31.Quarter(ai+int64(ti))
		b.Re, b.Im = q31.Quarter(ar-int64(tr)), q31.Quarter(ai-int64(ti))
	}

	// Stage 2: w = 1 for the first pair of each group, w = -j for the second.
	for i := 0; i < n; i += 4 {
		a, b := &pts[i], &pts[i+2]
		tr, ti := q31.Mul(b.Re, one), q31.Mul(b.Im, one)
		ar, ai := int64(a.Re), int64(a.Im)

		a.Re, a.Im = q31.Half(ar+int64(tr)), q31.Half(ai+int64(ti))
		b.Re, b.Im = q31.Half(ar-int64(tr)), q31.Half(ai-int64(ti))

		a, b = &pts[i+1], &pts[i+3]
		tr, ti = q31.Mul(b.Im, one), q31.Mul(b.Re, -one)
		ar, ai = int64(a.Re), int64(a.Im)

		a.Re, a.Im = q31.Half(ar+int64(tr)), q31.Half(ai+int64(ti))
		b.Re, b.Im = q31.Half(ar-int64(tr)), q31.Half(ai-int64(ti))
	}

	for size := 8; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size

		for k := range half {
			c, s := halfTwiddle(sine, q, k*stride)
			wr, wi := c, -s

			for i := k; i < n; i += size {
				forwardButterfly(&pts[i], &pts[i+half], wr, wi, q31.Half)
			}
		}
	}
}
