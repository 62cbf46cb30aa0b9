// Package csr provides the read-only compressed sparse row graph view that
// the push engine and batch drivers operate on.
//
// A Graph is immutable after construction and safe to share across any number
// of concurrent push computations without locking. All structural validation
// (indptr monotonicity, neighbor id bounds) happens once in New so that the
// push hot loop stays branch-free.
package csr

import "fmt"

// ErrMalformedIndptr indicates an indptr slice that is not a valid CSR row
// offset vector.
type ErrMalformedIndptr struct {
	Reason string
}

func (e *ErrMalformedIndptr) Error() string {
	return fmt.Sprintf("malformed indptr: %s", e.Reason)
}

// ErrIndexOutOfRange indicates a neighbor id in indices outside [0, NumNodes).
type ErrIndexOutOfRange struct {
	Position int   // Offset into indices
	Index    int32 // The offending neighbor id
	NumNodes int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("neighbor id %d at indices[%d] outside [0, %d)", e.Index, e.Position, e.NumNodes)
}

// Graph is an immutable CSR adjacency plus a per-node out-degree vector.
type Graph struct {
	indptr  []int64
	indices []int32
	deg     []float64
}

// Options represents the options for constructing a Graph.
type Options struct {
	// Degrees supplies an independently measured out-degree vector. When nil,
	// binary out-degrees (neighbor counts per row) are derived from indptr.
	// A supplied vector is honored as given, even if it disagrees with the
	// adjacency.
	Degrees []float64
}

// DefaultOptions derives degrees from the adjacency.
var DefaultOptions = Options{}

// WithDegrees supplies an independent out-degree vector.
func WithDegrees(deg []float64) func(o *Options) {
	return func(o *Options) {
		o.Degrees = deg
	}
}

// New validates and wraps a CSR adjacency.
//
// indptr must have length nnodes+1, start at 0, be non-decreasing, and end at
// len(indices). Every neighbor id must lie in [0, nnodes). The slices are
// retained, not copied; callers must not mutate them afterwards.
func New(indptr []int64, indices []int32, optFns ...func(o *Options)) (*Graph, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if len(indptr) < 1 {
		return nil, &ErrMalformedIndptr{Reason: "empty"}
	}

	n := len(indptr) - 1

	if indptr[0] != 0 {
		return nil, &ErrMalformedIndptr{Reason: fmt.Sprintf("indptr[0] = %d, want 0", indptr[0])}
	}

	for i := 0; i < n; i++ {
		if indptr[i+1] < indptr[i] {
			return nil, &ErrMalformedIndptr{Reason: fmt.Sprintf("indptr[%d] = %d decreases from %d", i+1, indptr[i+1], indptr[i])}
		}
	}

	if indptr[n] != int64(len(indices)) {
		return nil, &ErrMalformedIndptr{Reason: fmt.Sprintf("indptr[%d] = %d, want len(indices) = %d", n, indptr[n], len(indices))}
	}

	for i, v := range indices {
		if v < 0 || int(v) >= n {
			return nil, &ErrIndexOutOfRange{Position: i, Index: v, NumNodes: n}
		}
	}

	deg := opts.Degrees
	if deg == nil {
		deg = make([]float64, n)
		for i := 0; i < n; i++ {
			deg[i] = float64(indptr[i+1] - indptr[i])
		}
	} else if len(deg) != n {
		return nil, fmt.Errorf("degree vector length %d, want %d", len(deg), n)
	}

	return &Graph{
		indptr:  indptr,
		indices: indices,
		deg:     deg,
	}, nil
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	return len(g.indptr) - 1
}

// NumEdges returns the number of stored directed edges.
func (g *Graph) NumEdges() int {
	return len(g.indices)
}

// Neighbors returns the out-neighbors of u as a zero-copy subslice.
func (g *Graph) Neighbors(u int32) []int32 {
	return g.indices[g.indptr[u]:g.indptr[u+1]]
}

// Degree returns the out-degree of u.
func (g *Graph) Degree(u int32) float64 {
	return g.deg[u]
}

// Degrees returns the out-degree vector. The slice is shared; callers must
// treat it as read-only.
func (g *Graph) Degrees() []float64 {
	return g.deg
}

// FromEdges builds a Graph over n nodes from parallel edge lists. Edges are
// stored exactly as given; callers wanting an undirected graph must supply
// both directions.
func FromEdges(n int, src, dst []int32, optFns ...func(o *Options)) (*Graph, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("edge list length mismatch: %d src, %d dst", len(src), len(dst))
	}

	indptr := make([]int64, n+1)
	for i, u := range src {
		if u < 0 || int(u) >= n {
			return nil, &ErrIndexOutOfRange{Position: i, Index: u, NumNodes: n}
		}
		indptr[u+1]++
	}
	for i := 0; i < n; i++ {
		indptr[i+1] += indptr[i]
	}

	// Second pass: scatter destinations using a per-row cursor.
	cursor := make([]int64, n)
	copy(cursor, indptr[:n])

	indices := make([]int32, len(dst))
	for i, u := range src {
		indices[cursor[u]] = dst[i]
		cursor[u]++
	}

	return New(indptr, indices, optFns...)
}
