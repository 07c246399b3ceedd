package fft

import "github.com/cwbudde/algo-fixfft/internal/q31"

// Forward computes the forward DFT of bit-reversed pts in place, leaving the
// spectrum in natural order. The first stage divides by 4 and every later
// stage by 2, so the result is X[k]/2N. The extra factor of 2 is a guard
// bit: a butterfly output component can reach the complex modulus of its
// inputs, up to √2 for full-scale samples, and the guard keeps every stage
// inside [-1, 1) for any input.
func Forward(pts []Complex, sine []int32) {
	n := len(pts)
	q := n >> 2
	scale := q31.Quarter

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				c, s := halfTwiddle(sine, q, k*stride)
				forwardButterfly(&pts[start+k], &pts[start+k+half], c, -s, scale)
			}
		}

		scale = q31.Half
	}
}

// Inverse computes 2·N times the inverse DFT of bit-reversed pts in place,
// leaving the sequence in natural order, so that applied to the output of
// Forward (after BitReverse) it recovers the original samples. All stages
// but the last are unscaled; the last doubles. Intermediate values of a
// spectrum produced by Forward stay within half the input range.
func Inverse(pts []Complex, sine []int32) {
	n := len(pts)
	q := n >> 2

	for size := 2; size < n; size <<= 1 {
		half := size >> 1
		stride := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				c, s := halfTwiddle(sine, q, k*stride)
				inverseButterfly(&pts[start+k], &pts[start+k+half], c, s)
			}
		}
	}

	// Last stage: one group, stride 1.
	h := n >> 1
	for k := range h {
		c, s := halfTwiddle(sine, q, k)
		inverseButterflyDouble(&pts[k], &pts[k+h], c, s)
	}
}

// forwardButterfly sets a, b = scale(a + w·b), scale(a - w·b).
func forwardButterfly(a, b *Complex, wr, wi int32, scale func(int64) int32) {
	tr, ti := q31.CMul(b.Re, b.Im, wr, wi)
	ar, ai := int64(a.Re), int64(a.Im)

	a.Re = scale(ar + int64(tr))
	a.Im = scale(ai + int64(ti))
	b.Re = scale(ar - int64(tr))
	b.Im = scale(ai - int64(ti))
}

// inverseButterfly sets a, b = a + w·b, a - w·b.
func inverseButterfly(a, b *Complex, wr, wi int32) {
	tr, ti := q31.CMul(b.Re, b.Im, wr, wi)
	ar, ai := int64(a.Re), int64(a.Im)

	a.Re = q31.Sat(ar + int64(tr))
	a.Im = q31.Sat(ai + int64(ti))
	b.Re = q31.Sat(ar - int64(tr))
	b.Im = q31.Sat(ai - int64(ti))
}

// inverseButterflyDouble sets a, b = 2(a + w·b), 2(a - w·b) with the product
// rounded once at the doubled scale.
func inverseButterflyDouble(a, b *Complex, wr, wi int32) {
	tr, ti := q31.CMul2(b.Re, b.Im, wr, wi)
	ar, ai := 2*int64(a.Re), 2*int64(a.Im)

	a.Re = q31.Sat(ar + tr)
	a.Im = q31.Sat(ai + ti)
	b.Re = q31.Sat(ar - tr)
	b.Im = q31.Sat(ai - ti)
}
