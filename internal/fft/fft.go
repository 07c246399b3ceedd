// Package fft implements the fixed-point radix-2 transform engine.
//
// Nothing in this package validates its arguments: callers guarantee that
// len(pts) is a power of two of at least 4 and that sine holds the
// len(pts)/4+1 entries of the matching quarter-sine table. The public
// package performs those checks once at its boundary.
package fft

// Complex is one fixed-point complex sample. Both components are Q1.31.
type Complex struct {
	Re int32
	Im int32
}
