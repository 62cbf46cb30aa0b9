// Package sparse provides the sparse relevance matrix assembled from per-seed
// push results, top-k row truncation, and degree-based normalization.
package sparse

import "sort"

// Row is one sparse matrix row: parallel column/value slices.
type Row struct {
	Cols []int32
	Vals []float64
}

// NNZ returns the number of stored entries.
func (r Row) NNZ() int {
	return len(r.Cols)
}

// TopK returns the k highest-valued entries of the row, sorted by column id
// ascending. Ties are broken deterministically toward the lower column id.
// k <= 0 or k >= NNZ returns the row whole (re-sorted by column).
func (r Row) TopK(k int) Row {
	if k <= 0 || k >= r.NNZ() {
		return r.sortedByCol()
	}

	h := boundedHeap{items: make([]heapEntry, 0, k)}
	for i, c := range r.Cols {
		h.offer(heapEntry{col: c, val: r.Vals[i]}, k)
	}

	out := Row{
		Cols: make([]int32, len(h.items)),
		Vals: make([]float64, len(h.items)),
	}
	for i, it := range h.items {
		out.Cols[i] = it.col
		out.Vals[i] = it.val
	}

	return out.sortedByCol()
}

func (r Row) sortedByCol() Row {
	if sort.SliceIsSorted(r.Cols, func(i, j int) bool { return r.Cols[i] < r.Cols[j] }) {
		return r
	}

	out := Row{
		Cols: append([]int32(nil), r.Cols...),
		Vals: append([]float64(nil), r.Vals...),
	}
	sort.Sort(byCol(out))

	return out
}

type byCol Row

func (s byCol) Len() int           { return len(s.Cols) }
func (s byCol) Less(i, j int) bool { return s.Cols[i] < s.Cols[j] }
func (s byCol) Swap(i, j int) {
	s.Cols[i], s.Cols[j] = s.Cols[j], s.Cols[i]
	s.Vals[i], s.Vals[j] = s.Vals[j], s.Vals[i]
}

type heapEntry struct {
	col int32
	val float64
}

// boundedHeap is a value-based min-heap capped at k entries; the root is the
// weakest kept entry. "Weaker" means lower value, or equal value with a
// higher column id, so equal-valued entries are evicted highest-column first.
type boundedHeap struct {
	items []heapEntry
}

// weaker reports whether a ranks below b.
func weaker(a, b heapEntry) bool {
	if a.val != b.val {
		return a.val < b.val
	}
	return a.col > b.col
}

func (h *boundedHeap) offer(e heapEntry, k int) {
	if len(h.items) < k {
		h.items = append(h.items, e)
		h.siftUp(len(h.items) - 1)
		return
	}

	if weaker(h.items[0], e) {
		h.items[0] = e
		h.siftDown(0)
	}
}

func (h *boundedHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !weaker(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *boundedHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		weakest := l
		if r := l + 1; r < n && weaker(h.items[r], h.items[l]) {
			weakest = r
		}
		if !weaker(h.items[weakest], h.items[i]) {
			return
		}
		h.items[i], h.items[weakest] = h.items[weakest], h.items[i]
		i = weakest
	}
}
