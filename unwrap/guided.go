package unwrap

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// Guided unwraps f by best-first growth from seed.
//
// The seed keeps its value. Its in-grid axis neighbours enter the frontier
// tagged with their quality. Until the frontier is empty, the best candidate
// is removed, unwrapped against its first settled neighbour (order −e0, +e0,
// −e1, …) and settled, and its unsettled neighbours that are not already
// candidates are inserted.
//
// A nil seed means the origin; a nil quality is derived with phase.Quality.
// The returned quality is the field that ordered the growth. Every sample
// of a rectangular grid is settled on return.
//
// Errors: ErrNilField, ErrSeedOutOfRange, phase.ErrQualityShape. Validation
// happens before any sample is touched.
// Complexity: O(N log N).
func Guided(f *grid.Field, seed []int, quality *grid.Field) (unwrapped, q *grid.Field, err error) {
	r, err := newGuidedRunner(f, seed, quality)
	if err != nil {
		return nil, nil, err
	}
	r.init()
	r.process()

	return r.out, r.quality, nil
}

// guidedRunner holds the mutable state of one quality-guided growth.
type guidedRunner struct {
	out     *grid.Field // unwrapped phase, starts as a copy of the input
	quality *grid.Field // ordering key per sample
	seed    int         // flat offset of the seed
	settled []bool      // settlement flag per sample
	front   *frontier   // candidate set
	nbuf    []int       // neighbour scratch
	count   int         // settled samples
}

func newGuidedRunner(f *grid.Field, seed []int, quality *grid.Field) (*guidedRunner, error) {
	if f == nil {
		return nil, ErrNilField
	}

	// 1) Resolve the seed; nil means the origin.
	if seed == nil {
		seed = make([]int, f.Dims())
	}
	off, err := f.Offset(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedOutOfRange, err)
	}

	// 2) Resolve the quality field.
	if quality == nil {
		if quality, err = phase.Quality(f); err != nil {
			return nil, err
		}
	} else if !quality.SameShape(f) {
		return nil, fmt.Errorf("%w: %v vs %v", phase.ErrQualityShape, quality, f)
	}

	return &guidedRunner{
		out:     f.Clone(),
		quality: quality,
		seed:    off,
		settled: make([]bool, f.Len()),
		front:   newFrontier(f.Len()),
		nbuf:    make([]int, 0, 2*f.Dims()),
	}, nil
}

// init settles the seed and inserts its neighbours.
func (r *guidedRunner) init() {
	r.settled[r.seed] = true
	r.count = 1
	r.expand(r.seed)
}

// process drains the frontier.
func (r *guidedRunner) process() {
	data := r.out.Data()
	for r.front.Len() > 0 {
		// 1) Best candidate.
		c := r.front.Pop()

		// 2) Unwrap against the first settled neighbour and settle.
		ref := r.settledNeighbor(c.offset)
		data[c.offset] = phase.Unwrap(data[c.offset], data[ref])
		r.settled[c.offset] = true
		r.count++

		// 3) Extend the frontier.
		r.expand(c.offset)
	}
}

// expand inserts the unsettled neighbours of offset. Neighbours that are
// already candidates keep their first recorded quality.
func (r *guidedRunner) expand(offset int) {
	qual := r.quality.Data()
	r.nbuf = r.out.NeighborOffsets(r.nbuf, offset)
	for _, nb := range r.nbuf {
		if r.settled[nb] {
			continue
		}
		r.front.Push(nb, qual[nb])
	}
}

// settledNeighbor returns the first settled axis neighbour of offset. Every
// candidate was inserted by a settled neighbour, so finding none is a broken
// invariant.
func (r *guidedRunner) settledNeighbor(offset int) int {
	r.nbuf = r.out.NeighborOffsets(r.nbuf, offset)
	for _, nb := range r.nbuf {
		if r.settled[nb] {
			return nb
		}
	}
	panic(fmt.Sprintf("unwrap: candidate at offset %d has no settled neighbour", offset))
}
