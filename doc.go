// Package pushrank computes approximate Personalized PageRank (PPR) relevance
// vectors over large sparse graphs using the local push algorithm, truncates
// each vector to its top-k entries, and assembles the results into a sparse
// relevance matrix for graph-learning pipelines (neighbor sampling, label
// propagation).
//
// # Quick Start
//
//	g, _ := csr.New(indptr, indices)
//	m, _ := pushrank.TopKMatrix(ctx, g, seeds,
//	    pushrank.WithAlpha(0.25),
//	    pushrank.WithEpsilon(1e-4),
//	    pushrank.WithTopK(32),
//	    pushrank.WithNormalization(sparse.NormalizationSym),
//	)
//
// Each row of m is the top-k PPR vector of one seed. Rows are computed in
// parallel; per-row results are deterministic regardless of scheduling.
//
// # Variants
//
//   - TopKMatrix: one row per seed node.
//   - TopKClassMatrix: one row per class, aggregating all nodes sharing a
//     label into a single seed set.
//   - TopKBipartiteMatrix: runs the pipeline over the symmetric combination
//     of two disjoint node partitions and optionally slices out the
//     source-to-target block.
//
// The push computation is a bounded-error approximation: every returned entry
// satisfies |p(v) - ppr(v)| <= epsilon*degree(v).
package pushrank
