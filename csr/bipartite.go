package csr

import "fmt"

// Bipartite builds one combined symmetric graph over the union of two disjoint
// node partitions from a cross-adjacency given as parallel edge lists
// (rowIdx[k] in the left partition, colIdx[k] in the right partition).
//
// In the combined space, left node i keeps id i and right node j becomes
// nLeft+j. Every cross edge is mirrored, so the result is undirected; both
// diagonal blocks are empty. The combined graph can be fed to the regular
// push pipeline as if it were one graph.
func Bipartite(nLeft, nRight int, rowIdx, colIdx []int32) (*Graph, error) {
	if len(rowIdx) != len(colIdx) {
		return nil, fmt.Errorf("cross edge list length mismatch: %d rows, %d cols", len(rowIdx), len(colIdx))
	}

	n := nLeft + nRight

	indptr := make([]int64, n+1)
	for k := range rowIdx {
		i, j := rowIdx[k], colIdx[k]
		if i < 0 || int(i) >= nLeft {
			return nil, &ErrIndexOutOfRange{Position: k, Index: i, NumNodes: nLeft}
		}
		if j < 0 || int(j) >= nRight {
			return nil, &ErrIndexOutOfRange{Position: k, Index: j, NumNodes: nRight}
		}
		indptr[i+1]++
		indptr[int(j)+nLeft+1]++
	}
	for i := 0; i < n; i++ {
		indptr[i+1] += indptr[i]
	}

	cursor := make([]int64, n)
	copy(cursor, indptr[:n])

	indices := make([]int32, 2*len(rowIdx))
	for k := range rowIdx {
		i, j := int(rowIdx[k]), int(colIdx[k])+nLeft
		indices[cursor[i]] = int32(j)
		cursor[i]++
		indices[cursor[j]] = int32(i)
		cursor[j]++
	}

	return New(indptr, indices)
}
