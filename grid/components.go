package grid

import "fmt"

// Components finds every group of flagged samples (mask[i] == true) that is
// connected through axis neighbours. Each component lists flat offsets in
// BFS discovery order; components are ordered by their smallest offset.
//
// Returns ErrSizeMismatch if len(mask) != f.Len().
//
// Time:   O(N·2n) for n axes.
// Memory: O(N) for visited flags and output.
func (f *Field) Components(mask []bool) ([][]int, error) {
	if len(mask) != len(f.data) {
		return nil, fieldErrorf("Components", fmt.Errorf("%w: mask has %d entries, field %d", ErrSizeMismatch, len(mask), len(f.data)))
	}
	seen := make([]bool, len(mask))
	var comps [][]int
	var nbrs []int

	for i0, on := range mask {
		if !on || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbrs = f.NeighborOffsets(nbrs, u)
			for _, v := range nbrs {
				if mask[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
