package fixfft

import (
	"fmt"

	m "github.com/cwbudde/algo-fixfft/internal/math"
	"github.com/cwbudde/algo-fixfft/internal/q31"
	"github.com/cwbudde/algo-fixfft/internal/tables"
)

// Supported transform sizes for the built-in tables.
const (
	MinSize = tables.MinSize
	MaxSize = tables.MaxSize
)

// SineTable is a read-only quarter-sine table: sin(2πk/N) for k = 0..N/4 in
// Q1.31. The zero value is not usable; obtain tables from Sine or
// NewSineTable. Tables are safe for concurrent use.
type SineTable struct {
	n      int
	values []int32
}

// Sine returns the built-in table for an n-point transform.
func Sine(n int) (SineTable, error) {
	if !m.IsPowerOf2(n) || n < MinSize {
		return SineTable{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	values, ok := tables.Lookup(n)
	if !ok {
		return SineTable{}, fmt.Errorf("%w: %d (supported %d..%d)", ErrUnsupportedSize, n, MinSize, MaxSize)
	}

	return SineTable{n: n, values: values}, nil
}

// NewSineTable wraps an externally generated quarter-sine table. values is
// copied. Its length must be N/4+1 for a power-of-two N of at least 4, the
// first entry must be 0 and the last One.
func NewSineTable(values []int32) (SineTable, error) {
	if values == nil {
		return SineTable{}, ErrNilSlice
	}

	q := len(values) - 1
	if q < 1 || !m.IsPowerOf2(q) {
		return SineTable{}, fmt.Errorf("%w: length %d is not N/4+1", ErrInvalidTable, len(values))
	}

	if values[0] != 0 || values[q] != q31.One {
		return SineTable{}, fmt.Errorf("%w: endpoints (%d, %d), want (0, %d)", ErrInvalidTable, values[0], values[q], q31.One)
	}

	for i, v := range values {
		if v < 0 {
			return SineTable{}, fmt.Errorf("%w: negative entry %d at %d", ErrInvalidTable, v, i)
		}

		if i > 0 && v < values[i-1] {
			return SineTable{}, fmt.Errorf("%w: entry %d at %d is below its predecessor %d", ErrInvalidTable, v, i, values[i-1])
		}
	}

	return SineTable{n: 4 * q, values: append([]int32(nil), values...)}, nil
}

// N returns the transform size the table belongs to, or 0 for the zero value.
func (t SineTable) N() int { return t.n }

// Len returns the number of entries, N/4+1.
func (t SineTable) Len() int { return len(t.values) }

// At returns entry k.
func (t SineTable) At(k int) int32 { return t.values[k] }

// Values returns a copy of the entries.
func (t SineTable) Values() []int32 {
	return append([]int32(nil), t.values...)
}

// SupportedSizes returns the sizes that have built-in tables.
func SupportedSizes() []int {
	return tables.Sizes()
}
