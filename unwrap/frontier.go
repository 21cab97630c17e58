package unwrap

import "container/heap"

// candidate is a frontier entry: a flat offset, the quality recorded when it
// was inserted, and its insertion sequence number.
type candidate struct {
	offset  int
	quality float64
	seq     uint64
}

// candidateHeap is a max-heap of candidates by quality; equal qualities pop
// in insertion order.
type candidateHeap []candidate

// Len returns the number of items in the heap.
func (h candidateHeap) Len() int { return len(h) }

// Less ranks higher quality first, then earlier insertion.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].quality != h[j].quality {
		return h[i].quality > h[j].quality
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be a candidate.
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

// Pop is called by heap.Pop.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier is the candidate set of quality-guided growth: at most one entry
// per offset, retrieval of the best entry in O(log n).
type frontier struct {
	heap    candidateHeap
	present map[int]struct{}
	seq     uint64
}

func newFrontier(capHint int) *frontier {
	return &frontier{
		heap:    make(candidateHeap, 0, capHint),
		present: make(map[int]struct{}, capHint),
	}
}

// Len returns the number of candidates.
func (fr *frontier) Len() int { return fr.heap.Len() }

// Contains reports whether offset is a candidate.
func (fr *frontier) Contains(offset int) bool {
	_, ok := fr.present[offset]
	return ok
}

// Push inserts offset with quality q unless offset is already a candidate,
// in which case the frontier is unchanged and Push returns false.
func (fr *frontier) Push(offset int, q float64) bool {
	if fr.Contains(offset) {
		return false
	}
	fr.present[offset] = struct{}{}
	heap.Push(&fr.heap, candidate{offset: offset, quality: q, seq: fr.seq})
	fr.seq++

	return true
}

// Pop removes and returns the best candidate. The frontier must not be empty.
func (fr *frontier) Pop() candidate {
	c := heap.Pop(&fr.heap).(candidate)
	delete(fr.present, c.offset)

	return c
}
