package pushrank

import (
	"context"

	"github.com/hupe1980/pushrank/csr"
	"github.com/hupe1980/pushrank/sparse"
)

// TopKBipartiteMatrix runs the PPR pipeline over the symmetric combination of
// two disjoint node partitions. The cross-adjacency is given as parallel edge
// lists (rowIdx[k] in the left partition, colIdx[k] in the right partition);
// every cross edge is mirrored, both diagonal blocks are empty.
//
// In the combined node space, left node i keeps id i and right node j becomes
// nLeft+j; seeds address that space. With full set, the result spans all
// nLeft+nRight columns; otherwise only the left-to-right block is returned,
// with right-partition column ids shifted back to [0, nRight).
func TopKBipartiteMatrix(ctx context.Context, nLeft, nRight int, rowIdx, colIdx, seeds []int32, full bool, optFns ...func(o *Options)) (*sparse.Matrix, error) {
	g, err := csr.Bipartite(nLeft, nRight, rowIdx, colIdx)
	if err != nil {
		return nil, err
	}

	m, err := TopKMatrix(ctx, g, seeds, optFns...)
	if err != nil {
		return nil, err
	}

	if full {
		return m, nil
	}

	return m.ColRange(nLeft, nLeft+nRight), nil
}
