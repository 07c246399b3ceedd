// Package fixfft implements in-place radix-2 FFTs on Q1.31 fixed-point
// complex samples, for sizes 4 to 8192.
//
// The complex transforms expect bit-reversed input (see BitReverse) and
// produce natural-order output. The forward transform quarters the first
// stage and halves every later one, so its output is the DFT scaled by 1/2N.
// The extra factor of two is a guard bit: a packed sample may have modulus up
// to √2, and with it no butterfly saturates even for full-scale input. The
// inverse doubles in its last stage, so InverseComplex after ForwardComplex
// returns the input within a few LSB per stage.
//
// Two real signals can be transformed with one complex FFT by packing them
// into the real and imaginary parts (PackTwoReals). ForwardTwoReals returns
// both half spectra side by side and InverseTwoReals undoes it.
//
//	sine, _ := fixfft.Sine(256)
//	pts := make([]fixfft.Complex, 256)
//	_ = fixfft.PackTwoReals(pts, left, right)
//	_ = fixfft.ForwardTwoReals(pts, sine)
//
// Plan wraps a size, its table and the kernel chosen for this machine.
package fixfft
