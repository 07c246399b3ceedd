// Package q31 implements the Q1.31 fixed-point arithmetic used by the
// transform engine.
//
// A Q31 value is an int32 whose top bit is the sign and whose remaining 31
// bits are fraction. The representable range is [-1, 1-2^-31]; One is the
// closest value to 1.0.
package q31

import "math"

const (
	// FracBits is the number of fractional bits.
	FracBits = 31

	// One is the Q31 representation of 1.0 (rounded down to the largest
	// representable value).
	One int32 = math.MaxInt32

	// MinusOne is the Q31 representation of -1.0.
	MinusOne int32 = math.MinInt32

	// roundHalf is added before the final shift of a product.
	roundHalf int64 = 1 << (FracBits - 1)

	scale = 1 << FracBits
)

// Sat clamps x to the int32 range.
func Sat(x int64) int32 {
	if x > math.MaxInt32 {
		return math.MaxInt32
	}

	if x < math.MinInt32 {
		return math.MinInt32
	}

	return int32(x)
}

// Mul returns a*b rounded to nearest (ties toward +inf), saturating.
// Only MinusOne*MinusOne saturates.
func Mul(a, b int32) int32 {
	return Sat((int64(a)*int64(b) + roundHalf) >> FracBits)
}

// CMul returns the complex product (ar + j·ai)(br + j·bi). Each component is
// accumulated at full precision and rounded once.
func CMul(ar, ai, br, bi int32) (re, im int32) {
	re = Sat((int64(ar)*int64(br) - int64(ai)*int64(bi) + roundHalf) >> FracBits)
	im = Sat((int64(ar)*int64(bi) + int64(ai)*int64(br) + roundHalf) >> FracBits)

	return re, im
}

// CMul2 returns twice the complex product (ar + j·ai)(br + j·bi), rounded
// once and not saturated. The result fits in 33 bits.
func CMul2(ar, ai, br, bi int32) (re, im int64) {
	re = (int64(ar)*int64(br) - int64(ai)*int64(bi) + roundHalf>>1) >> (FracBits - 1)
	im = (int64(ar)*int64(bi) + int64(ai)*int64(br) + roundHalf>>1) >> (FracBits - 1)

	return re, im
}

// AddSat returns a+b, saturating.
func AddSat(a, b int32) int32 {
	return Sat(int64(a) + int64(b))
}

// SubSat returns a-b, saturating.
func SubSat(a, b int32) int32 {
	return Sat(int64(a) - int64(b))
}

// Half returns x/2 rounded half up, saturating. x is an int64 so that sums of
// two int32 values can be halved without overflow.
func Half(x int64) int32 {
	return Sat((x + 1) >> 1)
}

// Quarter returns x/4 rounded half up, saturating.
func Quarter(x int64) int32 {
	return Sat((x + 2) >> 2)
}

// FromFloat converts f to Q31, rounding to nearest and clamping to the
// representable range.
func FromFloat(f float64) int32 {
	if math.IsNaN(f) {
		return 0
	}

	v := math.Round(f * scale)
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}

	if v <= math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}

// ToFloat converts a Q31 value to float64.
func ToFloat(x int32) float64 {
	return float64(x) / scale
}
