package fixfft

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/reference"
)

func TestTransformsRejectInvalidInput(t *testing.T) {
	t.Parallel()

	sine8 := mustSine(t, 8)

	transforms := map[string]func([]Complex) error{
		"ForwardComplex":           func(p []Complex) error { return ForwardComplex(p, sine8) },
		"InverseComplex":           func(p []Complex) error { return InverseComplex(p, sine8) },
		"ForwardTwoReals":          func(p []Complex) error { return ForwardTwoReals(p, sine8) },
		"ForwardTwoRealsOptimised": func(p []Complex) error { return ForwardTwoRealsOptimised(p, sine8) },
		"InverseTwoReals":          func(p []Complex) error { return InverseTwoReals(p, sine8) },
		"BitReverse":               BitReverse,
		"ReorderTwoRealInputs":     ReorderTwoRealInputs,
		"RebuildOneRealInput":      RebuildOneRealInput,
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if err := fn(nil); !errors.Is(err, ErrNilSlice) {
				t.Errorf("nil input: got %v, want ErrNilSlice", err)
			}

			for _, n := range []int{0, 1, 2, 3, 6, 12} {
				if err := fn(make([]Complex, n)); !errors.Is(err, ErrInvalidLength) {
					t.Errorf("length %d: got %v, want ErrInvalidLength", n, err)
				}
			}
		})
	}
}

func TestTransformsRejectMismatchedTable(t *testing.T) {
	t.Parallel()

	sine := mustSine(t, 16)
	pts := make([]Complex, 8)

	for name, fn := range map[string]func([]Complex, SineTable) error{
		"ForwardComplex":           ForwardComplex,
		"InverseComplex":           InverseComplex,
		"ForwardTwoReals":          ForwardTwoReals,
		"ForwardTwoRealsOptimised": ForwardTwoRealsOptimised,
		"InverseTwoReals":          InverseTwoReals,
	} {
		if err := fn(pts, sine); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s: got %v, want ErrLengthMismatch", name, err)
		}

		if err := fn(pts, SineTable{}); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s with zero table: got %v, want ErrLengthMismatch", name, err)
		}
	}
}

func TestBitReverseTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for _, n := range testSizes {
		pts := reference.RandomComplex(newRand(uint64(n)), n, 1)
		orig := slices.Clone(pts)

		if err := BitReverse(pts); err != nil {
			t.Fatal(err)
		}

		if n > 4 && slices.Equal(pts, orig) {
			t.Errorf("n=%d: BitReverse left random input unchanged", n)
		}

		if err := BitReverse(pts); err != nil {
			t.Fatal(err)
		}

		if !slices.Equal(pts, orig) {
			t.Errorf("n=%d: BitReverse applied twice changed the input", n)
		}
	}
}

func TestBitReverseN8(t *testing.T) {
	t.Parallel()

	pts := make([]Complex, 8)
	for i := range pts {
		pts[i].Re = int32(i)
	}

	if err := BitReverse(pts); err != nil {
		t.Fatal(err)
	}

	want := []int32{0, 4, 2, 6, 1, 5, 3, 7}
	for i, p := range pts {
		if p.Re != want[i] {
			t.Fatalf("pts[%d].Re = %d, want %d", i, p.Re, want[i])
		}
	}
}

func TestForwardComplexMatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			sine := mustSine(t, n)
			pts := reference.RandomComplex(newRand(uint64(n)*7), n, 0.5)
			want := reference.Forward(reference.ToComplex128(pts))

			if err := BitReverse(pts); err != nil {
				t.Fatal(err)
			}

			if err := ForwardComplex(pts, sine); err != nil {
				t.Fatal(err)
			}

			assertWithinLSB(t, pts, want, float64(2*log2(n)+2), "n=%d", n)
		})
	}
}

func TestComplexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			sine := mustSine(t, n)
			pts := reference.RandomComplex(newRand(uint64(n)*11), n, 0.5)
			orig := reference.ToComplex128(pts)

			for _, step := range []func() error{
				func() error { return BitReverse(pts) },
				func() error { return ForwardComplex(pts, sine) },
				func() error { return BitReverse(pts) },
				func() error { return InverseComplex(pts, sine) },
			} {
				if err := step(); err != nil {
					t.Fatal(err)
				}
			}

			assertWithinLSB(t, pts, orig, reference.RoundTripBound(n), "round trip n=%d", n)
		})
	}
}

func TestForwardTwoRealsSpectra(t *testing.T) {
	t.Parallel()

	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			sine := mustSine(t, n)
			rng := newRand(uint64(n) * 13)
			s1 := reference.RandomReal(rng, n, 0.5)
			s2 := reference.RandomReal(rng, n, 0.5)

			pts := make([]Complex, n)
			if err := PackTwoReals(pts, s1, s2); err != nil {
				t.Fatal(err)
			}

			opt := slices.Clone(pts)

			if err := ForwardTwoReals(pts, sine); err != nil {
				t.Fatal(err)
			}

			if err := ForwardTwoRealsOptimised(opt, sine); err != nil {
				t.Fatal(err)
			}

			if !slices.Equal(pts, opt) {
				t.Fatal("optimised output differs from reference kernel")
			}

			for which, s := range map[Spectrum][]int32{First: s1, Second: s2} {
				want := realSpectrum(s)

				got := make([]Complex, n)
				for k := range got {
					bin, err := SpectrumBin(pts, which, k)
					if err != nil {
						t.Fatal(err)
					}

					got[k] = bin
				}

				assertWithinLSB(t, got, want, float64(2*log2(n)+3), "spectrum %d n=%d", which, n)
			}
		})
	}
}

func TestTwoRealsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range testSizes {
		sine := mustSine(t, n)
		rng := newRand(uint64(n) * 19)
		s1 := reference.RandomReal(rng, n, 0.5)
		s2 := reference.RandomReal(rng, n, 0.5)

		pts := make([]Complex, n)
		if err := PackTwoReals(pts, s1, s2); err != nil {
			t.Fatal(err)
		}

		if err := ForwardTwoReals(pts, sine); err != nil {
			t.Fatal(err)
		}

		if err := InverseTwoReals(pts, sine); err != nil {
			t.Fatal(err)
		}

		r1 := make([]int32, n)
		r2 := make([]int32, n)

		if err := UnpackTwoReals(r1, r2, pts); err != nil {
			t.Fatal(err)
		}

		tol := int64(reference.RoundTripBound(n)) + 2*int64(n)
		for i := range n {
			if absDiff(r1[i], s1[i]) > tol || absDiff(r2[i], s2[i]) > tol {
				t.Fatalf("n=%d sample %d = (%d, %d), want (%d, %d) within %d LSB", n, i, r1[i], r2[i], s1[i], s2[i], tol)
			}
		}
	}
}

func TestReorderThenRebuild(t *testing.T) {
	t.Parallel()

	n := 64
	sine := mustSine(t, n)
	pts := reference.RandomComplex(newRand(5), n, 0.5)

	if err := BitReverse(pts); err != nil {
		t.Fatal(err)
	}

	if err := ForwardComplex(pts, sine); err != nil {
		t.Fatal(err)
	}

	z := slices.Clone(pts)

	if err := ReorderTwoRealInputs(pts); err != nil {
		t.Fatal(err)
	}

	if err := RebuildOneRealInput(pts); err != nil {
		t.Fatal(err)
	}

	for k := range pts {
		if k <= n/2 && pts[k] != z[k] {
			t.Fatalf("bin %d = %+v, want exactly %+v", k, pts[k], z[k])
		}

		if absDiff(pts[k].Re, z[k].Re) > 1 || absDiff(pts[k].Im, z[k].Im) > 1 {
			t.Fatalf("bin %d = %+v, want %+v within 1 LSB", k, pts[k], z[k])
		}
	}
}

func BenchmarkForwardTwoReals(b *testing.B) {
	for _, n := range []int{256, 1024, 8192} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sine := mustSine(b, n)
			pts := reference.RandomComplex(newRand(1), n, 0.5)

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_ = ForwardTwoRealsOptimised(pts, sine)
			}
		})
	}
}
