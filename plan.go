package fixfft

import (
	"fmt"

	"github.com/cwbudde/algo-fixfft/internal/cpu"
	"github.com/cwbudde/algo-fixfft/internal/fft"
	"github.com/cwbudde/algo-fixfft/internal/planner"
)

// Plan binds a transform size to its sine table and the kernels chosen at
// creation time. Methods only check that the buffer has the plan's length.
// A Plan is immutable and safe for concurrent use on distinct buffers.
type Plan struct {
	n       int
	sine    SineTable
	kernels fft.Kernels
}

// NewPlan creates a plan for n points using the built-in table. The forward
// two-real kernel follows GetKernelStrategy, with KernelAuto resolved from
// the global wisdom for this CPU.
func NewPlan(n int) (*Plan, error) {
	return NewPlanWithStrategy(n, GetKernelStrategy())
}

// NewPlanWithStrategy is NewPlan with an explicit strategy.
func NewPlanWithStrategy(n int, strategy KernelStrategy) (*Plan, error) {
	sine, err := Sine(n)
	if err != nil {
		return nil, err
	}

	resolved := planner.Resolve(n, cpu.DetectFeatures(), planner.DefaultWisdom, strategy)

	return &Plan{
		n:       n,
		sine:    sine,
		kernels: fft.SelectKernels(resolved),
	}, nil
}

// Len returns the number of points.
func (p *Plan) Len() int { return p.n }

// Table returns the plan's sine table.
func (p *Plan) Table() SineTable { return p.sine }

// Strategy returns the resolved kernel strategy; never KernelAuto.
func (p *Plan) Strategy() KernelStrategy { return p.kernels.Strategy }

func (p *Plan) check(pts []Complex) error {
	if pts == nil {
		return ErrNilSlice
	}

	if len(pts) != p.n {
		return fmt.Errorf("%w: got %d, plan has %d", ErrLengthMismatch, len(pts), p.n)
	}

	return nil
}

// BitReverse applies the bit-reversal permutation in place.
func (p *Plan) BitReverse(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	fft.BitReverse(pts)

	return nil
}

// Forward runs the forward butterfly passes on bit-reversed input.
func (p *Plan) Forward(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	fft.Forward(pts, p.sine.values)

	return nil
}

// Inverse runs the inverse butterfly passes on bit-reversed input.
func (p *Plan) Inverse(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	fft.Inverse(pts, p.sine.values)

	return nil
}

// ForwardTwoReals transforms a packed pair of real signals with the plan's
// bound kernel.
func (p *Plan) ForwardTwoReals(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	p.kernels.ForwardTwoReals(pts, p.sine.values)

	return nil
}

// InverseTwoReals recovers the packed pair from its split spectrum.
func (p *Plan) InverseTwoReals(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	p.kernels.InverseTwoReals(pts, p.sine.values)

	return nil
}

// Reorder splits a combined spectrum into two half spectra.
func (p *Plan) Reorder(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	fft.Reorder(pts)

	return nil
}

// Rebuild merges two half spectra back into one combined spectrum.
func (p *Plan) Rebuild(pts []Complex) error {
	if err := p.check(pts); err != nil {
		return err
	}

	fft.Rebuild(pts)

	return nil
}
