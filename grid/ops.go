package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation names used when wrapping shape errors.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opAddScaled = "AddScaled"
	opDot       = "Dot"
)

// checkSame returns ErrShapeMismatch (wrapped with op) unless a and b share a shape.
func checkSame(op string, a, b *Field) error {
	if a == nil || b == nil || !a.SameShape(b) {
		return fmt.Errorf("grid: %s: %w", op, ErrShapeMismatch)
	}

	return nil
}

// Sub returns a − b.
// Complexity: O(N).
func Sub(a, b *Field) (*Field, error) {
	if err := checkSame(opSub, a, b); err != nil {
		return nil, err
	}
	out := NewLike(a)
	floats.SubTo(out.data, a.data, b.data)

	return out, nil
}

// Mul returns the elementwise product a·b.
// Complexity: O(N).
func Mul(a, b *Field) (*Field, error) {
	if err := checkSame(opMul, a, b); err != nil {
		return nil, err
	}
	out := NewLike(a)
	floats.MulTo(out.data, a.data, b.data)

	return out, nil
}

// AddConst adds c to every sample in place.
func (f *Field) AddConst(c float64) {
	floats.AddConst(c, f.data)
}

// Scale multiplies every sample by c in place.
func (f *Field) Scale(c float64) {
	floats.Scale(c, f.data)
}

// AddScaled performs f += alpha·g in place.
func (f *Field) AddScaled(alpha float64, g *Field) error {
	if err := checkSame(opAddScaled, f, g); err != nil {
		return err
	}
	floats.AddScaled(f.data, alpha, g.data)

	return nil
}

// Map returns a new field holding fn applied to every sample.
func (f *Field) Map(fn func(float64) float64) *Field {
	out := NewLike(f)
	for i, v := range f.data {
		out.data[i] = fn(v)
	}

	return out
}

// RemoveMean subtracts the sample mean in place and returns the removed bias.
func (f *Field) RemoveMean() float64 {
	bias := f.Mean()
	floats.AddConst(-bias, f.data)

	return bias
}

// Rescale returns f linearly mapped so that its minimum becomes lo and its
// maximum becomes hi. A constant field maps to hi everywhere.
// Complexity: O(N).
func Rescale(f *Field, lo, hi float64) *Field {
	out := NewLike(f)
	minV, maxV := f.Min(), f.Max()
	span := maxV - minV
	if span == 0 {
		out.Fill(hi)
		return out
	}
	k := (hi - lo) / span
	for i, v := range f.data {
		out.data[i] = lo + (v-minV)*k
	}

	return out
}

// Threshold returns a field holding inside where lower <= f <= upper and
// outside elsewhere.
func Threshold(f *Field, lower, upper, inside, outside float64) *Field {
	out := NewLike(f)
	for i, v := range f.data {
		if v >= lower && v <= upper {
			out.data[i] = inside
		} else {
			out.data[i] = outside
		}
	}

	return out
}
