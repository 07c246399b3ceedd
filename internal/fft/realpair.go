package fft

import "github.com/cwbudde/algo-fixfft/internal/q31"

// Reorder splits the natural-order spectrum Z of a packed pair of real
// signals (re = signal 1, im = signal 2) into the two half spectra
//
//	X1[k] = (Z[k] + conj(Z[N-k])) / 2
//	X2[k] = (Z[k] - conj(Z[N-k])) / 2j
//
// laid out as pts[0..N/2) = X1 and pts[N/2..N) = X2. Bins 0 and N/2 of a
// real signal are purely real, so pts[0] holds (X1[0], X1[N/2]) and
// pts[N/2] holds (X2[0], X2[N/2]).
func Reorder(pts []Complex) {
	n := len(pts)
	h := n >> 1
	q := n >> 2

	z0, zh := pts[0], pts[h]
	pts[0] = Complex{Re: z0.Re, Im: zh.Re}
	pts[h] = Complex{Re: z0.Im, Im: zh.Im}

	// Bins k and N/2-k are read and written together since the outputs of
	// one land in the input slots of the other.
	for k := 1; k < q; k++ {
		m := h - k

		x1k, x2k := split(pts[k], pts[n-k])
		x1m, x2m := split(pts[m], pts[n-m])

		pts[k], pts[h+k] = x1k, x2k
		pts[m], pts[h+m] = x1m, x2m
	}

	pts[q], pts[h+q] = split(pts[q], pts[h+q])
}

// Rebuild is the inverse of Reorder: it reassembles the full spectrum Z of
// the packed pair from the two half spectra so that Inverse yields signal 1
// in re and signal 2 in im.
func Rebuild(pts []Complex) {
	n := len(pts)
	h := n >> 1
	q := n >> 2

	x1, x2 := pts[0], pts[h]
	pts[0] = Complex{Re: x1.Re, Im: x2.Re}
	pts[h] = Complex{Re: x1.Im, Im: x2.Im}

	for k := 1; k < q; k++ {
		m := h - k

		zk, znk := merge(pts[k], pts[h+k])
		zm, znm := merge(pts[m], pts[h+m])

		pts[k], pts[n-k] = zk, znk
		pts[m], pts[n-m] = zm, znm
	}

	pts[q], pts[h+q] = merge(pts[q], pts[h+q])
}

// split returns X1 and X2 for one bin given z = Z[k] and zc = Z[N-k].
//
// The halving is done in lifting form: X1.re and X1.im are floor-halved and
// X2 is derived from them, so merge restores z exactly and zc within 1 LSB.
func split(z, zc Complex) (x1, x2 Complex) {
	a, b := int64(z.Re), int64(z.Im)
	c, d := int64(zc.Re), int64(zc.Im)

	p := (a + c) >> 1
	s := p - a
	r := (b - d) >> 1
	t := b - r

	return Complex{Re: int32(p), Im: int32(r)}, Complex{Re: int32(t), Im: int32(s)}
}

// merge returns Z[k] = X1 + j·X2 and Z[N-k] = conj(X1) + j·conj(X2).
func merge(x1, x2 Complex) (z, zc Complex) {
	p, r := int64(x1.Re), int64(x1.Im)
	t, s := int64(x2.Re), int64(x2.Im)

	z = Complex{Re: q31.Sat(p - s), Im: q31.Sat(r + t)}
	zc = Complex{Re: q31.Sat(p + s), Im: q31.Sat(t - r)}

	return z, zc
}
