package fft

// halfTwiddle returns cos(2πk/n) and sin(2πk/n) for k in [0, n/2), the only
// range the butterfly stages request, from the quarter-sine table by
// quadrant symmetry. q is n/4.
func halfTwiddle(sine []int32, q, k int) (cos, sin int32) {
	if k <= q {
		return sine[q-k], sine[k]
	}

	return -sine[k-q], sine[2*q-k]
}
