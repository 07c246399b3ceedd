package fft_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	"github.com/cwbudde/algo-fixfft/internal/q31"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

func packReals(s1, s2 []int32) []fft.Complex {
	pts := make([]fft.Complex, len(s1))
	for i := range pts {
		pts[i] = fft.Complex{Re: s1[i], Im: s2[i]}
	}

	return pts
}

func realSpectrum(s []int32) []complex128 {
	x := make([]fft.Complex, len(s))
	for i, v := range s {
		x[i].Re = v
	}

	return reference.Forward(reference.ToComplex128(x))
}

func TestForwardTwoRealsMatchesSeparateTransforms(t *testing.T) {
	t.Parallel()

	for _, n := range allSizes {
		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			sine := sineFor(t, n)
			rng := newRand(uint64(n) * 3)
			s1 := reference.RandomReal(rng, n, 0.5)
			s2 := reference.RandomReal(rng, n, 0.5)

			pts := packReals(s1, s2)
			fft.ForwardTwoReals(pts, sine)

			for which, s := range [][]int32{s1, s2} {
				want := realSpectrum(s)

				got := make([]fft.Complex, n)
				for k := range got {
					got[k] = fft.SpectrumBin(pts, which == 1, k)
				}

				assertWithinLSB(t, got, want, forwardBound(n)+1, "spectrum %d n=%d", which+1, n)
			}
		})
	}
}

func TestForwardTwoRealsOptimisedIsBitExact(t *testing.T) {
	t.Parallel()

	for _, n := range allSizes {
		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			sine := sineFor(t, n)

			for seed := range uint64(4) {
				rng := newRand(seed*1000 + uint64(n))
				// Full-range samples so the products hit every rounding case.
				pts := reference.RandomComplex(rng, n, 1.0)
				opt := clonePts(pts)

				fft.ForwardTwoReals(pts, sine)
				fft.ForwardTwoRealsOptimised(opt, sine)

				for k := range pts {
					if pts[k] != opt[k] {
						t.Fatalf("seed %d bin %d: reference %+v, optimised %+v", seed, k, pts[k], opt[k])
					}
				}
			}
		})
	}
}

func TestTwoRealsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range allSizes {
		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			sine := sineFor(t, n)
			rng := newRand(uint64(n) * 17)
			s1 := reference.RandomReal(rng, n, 0.5)
			s2 := reference.RandomReal(rng, n, 0.5)

			pts := packReals(s1, s2)
			fft.ForwardTwoReals(pts, sine)
			fft.InverseTwoReals(pts, sine)

			tol := int64(reference.RoundTripBound(n)) + 2*int64(n)
			for i := range pts {
				if absDiff(pts[i].Re, s1[i]) > tol || absDiff(pts[i].Im, s2[i]) > tol {
					t.Fatalf("sample %d = %+v, want (%d, %d) within %d LSB", i, pts[i], s1[i], s2[i], tol)
				}
			}
		})
	}
}

// squareWaves returns full-scale real signals following the signs of
// cos(2πi/N) and sin(2πi/N). Packed together every sample has modulus √2.
func squareWaves(n int) (s1, s2 []int32) {
	s1 = make([]int32, n)
	s2 = make([]int32, n)

	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		s1[i], s2[i] = q31.MinusOne, q31.MinusOne

		if math.Cos(angle) >= 0 {
			s1[i] = q31.One
		}

		if math.Sin(angle) >= 0 {
			s2[i] = q31.One
		}
	}

	return s1, s2
}

func TestTwoRealsFullScaleSquareWaves(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 64, 8192} {
		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			sine := sineFor(t, n)
			s1, s2 := squareWaves(n)

			pts := packReals(s1, s2)
			opt := clonePts(pts)

			fft.ForwardTwoReals(pts, sine)
			fft.ForwardTwoRealsOptimised(opt, sine)

			for which, s := range [][]int32{s1, s2} {
				want := realSpectrum(s)

				got := make([]fft.Complex, n)
				for k := range got {
					got[k] = fft.SpectrumBin(pts, which == 1, k)
				}

				assertWithinLSB(t, got, want, forwardBound(n)+1, "square wave spectrum %d n=%d", which+1, n)
			}

			for k := range pts {
				if pts[k] != opt[k] {
					t.Fatalf("bin %d: reference %+v, optimised %+v", k, pts[k], opt[k])
				}
			}

			fft.InverseTwoReals(pts, sine)

			tol := int64(reference.RoundTripBound(n)) + 2*int64(n)
			for i := range pts {
				if absDiff(pts[i].Re, s1[i]) > tol || absDiff(pts[i].Im, s2[i]) > tol {
					t.Fatalf("sample %d = %+v, want (%d, %d) within %d LSB", i, pts[i], s1[i], s2[i], tol)
				}
			}
		})
	}
}

func TestReorderRebuildAfterForward(t *testing.T) {
	t.Parallel()

	for _, n := range allSizes {
		sine := sineFor(t, n)
		rng := newRand(uint64(n) + 23)

		pts := packReals(reference.RandomReal(rng, n, 0.5), reference.RandomReal(rng, n, 0.5))
		fft.BitReverse(pts)
		fft.Forward(pts, sine)

		z := clonePts(pts)

		fft.Reorder(pts)
		fft.Rebuild(pts)

		for k := range pts {
			if absDiff(pts[k].Re, z[k].Re) > 1 || absDiff(pts[k].Im, z[k].Im) > 1 {
				t.Fatalf("n=%d bin %d: %+v, want %+v", n, k, pts[k], z[k])
			}

			if k <= n/2 && pts[k] != z[k] {
				t.Fatalf("n=%d bin %d: %+v, want exactly %+v", n, k, pts[k], z[k])
			}
		}
	}
}

func TestTwoRealsDoNotAllocate(t *testing.T) {
	n := 2048
	sine := sineFor(t, n)
	pts := reference.RandomComplex(newRand(4), n, 0.5)

	allocs := testing.AllocsPerRun(5, func() {
		fft.ForwardTwoRealsOptimised(pts, sine)
		fft.InverseTwoReals(pts, sine)
	})
	if allocs != 0 {
		t.Errorf("two-real round trip allocated %v times per run", allocs)
	}
}

func BenchmarkForwardTwoReals(b *testing.B) {
	kernels := map[string]fft.Kernel{
		"reference": fft.ForwardTwoReals,
		"optimised": fft.ForwardTwoRealsOptimised,
	}

	for _, n := range []int{256, 1024, 8192} {
		for name, kernel := range kernels {
			b.Run(sizeName(n)+"/"+name, func(b *testing.B) {
				sine := sineFor(b, n)
				pts := reference.RandomComplex(newRand(1), n, 0.5)

				b.ReportAllocs()
				b.ResetTimer()

				for range b.N {
					kernel(pts, sine)
				}
			})
		}
	}
}
