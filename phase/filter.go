package phase

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/phasor/grid"
)

// Mean smooths wrapped phase by the circular mean over a (2r+1)ⁿ box:
// atan2(Σ sin f, Σ cos f). Out-of-range window samples repeat the nearest
// edge sample. The box sums are separable running sums, so the cost does not
// grow with r.
// Complexity: O(N·n).
func Mean(f *grid.Field, radius int) (*grid.Field, error) {
	if err := checkFilter(f, radius); err != nil {
		return nil, err
	}
	sinSum := boxSum(f.Map(math.Sin), radius)
	cosSum := boxSum(f.Map(math.Cos), radius)

	return combineAtan2(sinSum, cosSum), nil
}

// Median smooths wrapped phase by atan2(median sin f, median cos f) over a
// (2r+1)ⁿ window with edge-repeating boundary.
// Complexity: O(N·w log w), w = (2r+1)ⁿ.
func Median(f *grid.Field, radius int) (*grid.Field, error) {
	if err := checkFilter(f, radius); err != nil {
		return nil, err
	}
	sinF, cosF := f.Map(math.Sin), f.Map(math.Cos)
	sinMed, cosMed := grid.NewLike(f), grid.NewLike(f)

	width := 2*radius + 1
	size := 1
	for d := 0; d < f.Dims(); d++ {
		size *= width
	}
	window := make([]int, 0, size)
	buf := make([]float64, size)

	for i := 0; i < f.Len(); i++ {
		window = windowOffsets(window, f, i, radius)
		sinMed.Data()[i] = median(buf, sinF.Data(), window)
		cosMed.Data()[i] = median(buf, cosF.Data(), window)
	}

	return combineAtan2(sinMed, cosMed), nil
}

func checkFilter(f *grid.Field, radius int) error {
	if f == nil {
		return ErrNilField
	}
	if radius < 1 {
		return fmt.Errorf("%w: got %d", ErrBadRadius, radius)
	}

	return nil
}

// boxSum returns, per sample, the sum of f over the clamped (2r+1)ⁿ box,
// computed one axis at a time with prefix sums.
func boxSum(f *grid.Field, r int) *grid.Field {
	cur := f
	for d := 0; d < f.Dims(); d++ {
		next := grid.NewLike(cur)
		src, dst := cur.Data(), next.Data()
		prefix := make([]float64, cur.Size(d)+1)
		cur.Lines(d, func(start, stride, n int) {
			for j := 0; j < n; j++ {
				prefix[j+1] = prefix[j] + src[start+j*stride]
			}
			first, last := src[start], src[start+(n-1)*stride]
			for j := 0; j < n; j++ {
				lo, hi := j-r, j+r
				sum := 0.0
				if lo < 0 {
					sum += float64(-lo) * first
					lo = 0
				}
				if hi > n-1 {
					sum += float64(hi-(n-1)) * last
					hi = n - 1
				}
				dst[start+j*stride] = sum + prefix[hi+1] - prefix[lo]
			}
		})
		cur = next
	}

	return cur
}

// windowOffsets lists the flat offsets of the clamped (2r+1)ⁿ window around i.
func windowOffsets(buf []int, f *grid.Field, i, r int) []int {
	buf = buf[:0]
	center := f.Coordinate(i)
	rel := make([]int, f.Dims())
	for d := range rel {
		rel[d] = -r
	}
	for {
		off := 0
		for d, c := range center {
			off += clampIndex(c+rel[d], f.Size(d)) * f.Stride(d)
		}
		buf = append(buf, off)

		// advance the odometer
		d := 0
		for ; d < len(rel); d++ {
			rel[d]++
			if rel[d] <= r {
				break
			}
			rel[d] = -r
		}
		if d == len(rel) {
			return buf
		}
	}
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}

	return v
}

// median returns the empirical median of src at the window offsets.
func median(buf, src []float64, window []int) float64 {
	vals := buf[:len(window)]
	for j, off := range window {
		vals[j] = src[off]
	}
	sort.Float64s(vals)

	return stat.Quantile(0.5, stat.Empirical, vals, nil)
}

func combineAtan2(y, x *grid.Field) *grid.Field {
	out := grid.NewLike(y)
	ys, xs, dst := y.Data(), x.Data(), out.Data()
	for i := range dst {
		dst[i] = math.Atan2(ys[i], xs[i])
	}

	return out
}
