// Package reference provides a float64 oracle for the fixed-point engine,
// built on gonum's FFT, and error statistics expressed in Q31 LSBs.
package reference

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	m "github.com/cwbudde/algo-fixfft/internal/math"
	"github.com/cwbudde/algo-fixfft/internal/q31"
)

// lsb is the value of one Q31 least significant bit.
const lsb = 1.0 / (1 << 31)

// ToComplex128 converts fixed-point samples to floating point.
func ToComplex128(pts []fft.Complex) []complex128 {
	out := make([]complex128, len(pts))
	for i, p := range pts {
		out[i] = complex(q31.ToFloat(p.Re), q31.ToFloat(p.Im))
	}

	return out
}

// FromComplex128 converts floating-point samples to fixed point, rounding
// and clamping each component.
func FromComplex128(x []complex128) []fft.Complex {
	out := make([]fft.Complex, len(x))
	for i, v := range x {
		out[i] = fft.Complex{Re: q31.FromFloat(real(v)), Im: q31.FromFloat(imag(v))}
	}

	return out
}

// Forward returns the DFT of x scaled by 1/2N, the scale the fixed-point
// forward transform produces.
func Forward(x []complex128) []complex128 {
	n := len(x)
	out := fourier.NewCmplxFFT(n).Coefficients(nil, x)

	inv := complex(1/float64(2*n), 0)
	for i := range out {
		out[i] *= inv
	}

	return out
}

// Inverse returns twice the unscaled inverse DFT of coeffs, matching the
// fixed-point inverse transform.
func Inverse(coeffs []complex128) []complex128 {
	out := fourier.NewCmplxFFT(len(coeffs)).Sequence(nil, coeffs)
	for i := range out {
		out[i] *= 2
	}

	return out
}

// Stats summarises the difference between a fixed-point result and its
// floating-point reference.
type Stats struct {
	MaxErrLSB float64 `json:"max_err_lsb" yaml:"max_err_lsb"`
	RMSErrLSB float64 `json:"rms_err_lsb" yaml:"rms_err_lsb"`
	SNRdB     float64 `json:"snr_db" yaml:"snr_db"`
}

// Compare measures got against want component-wise.
func Compare(got []fft.Complex, want []complex128) Stats {
	var maxErr, errEnergy, sigEnergy float64

	for i, w := range want {
		dr := q31.ToFloat(got[i].Re) - real(w)
		di := q31.ToFloat(got[i].Im) - imag(w)

		maxErr = math.Max(maxErr, math.Max(math.Abs(dr), math.Abs(di)))
		errEnergy += dr*dr + di*di
		sigEnergy += real(w)*real(w) + imag(w)*imag(w)
	}

	st := Stats{MaxErrLSB: maxErr / lsb}
	if len(want) > 0 {
		st.RMSErrLSB = math.Sqrt(errEnergy/float64(2*len(want))) / lsb
	}

	switch {
	case errEnergy == 0:
		st.SNRdB = math.Inf(1)
	case sigEnergy == 0:
		st.SNRdB = math.Inf(-1)
	default:
		st.SNRdB = 10 * math.Log10(sigEnergy/errEnergy)
	}

	return st
}

// RoundTripBound is the documented worst-case error, in LSBs per component,
// of a forward transform followed by an inverse transform of size n.
func RoundTripBound(n int) float64 {
	return float64(2 * n * (2*m.Log2(n) + 2))
}

// RandomComplex returns n samples with both components uniform in
// [-amplitude, amplitude).
func RandomComplex(rng *rand.Rand, n int, amplitude float64) []fft.Complex {
	out := make([]fft.Complex, n)
	for i := range out {
		out[i] = fft.Complex{
			Re: q31.FromFloat(amplitude * (2*rng.Float64() - 1)),
			Im: q31.FromFloat(amplitude * (2*rng.Float64() - 1)),
		}
	}

	return out
}

// RandomReal returns n samples uniform in [-amplitude, amplitude).
func RandomReal(rng *rand.Rand, n int, amplitude float64) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = q31.FromFloat(amplitude * (2*rng.Float64() - 1))
	}

	return out
}
