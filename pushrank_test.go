package pushrank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pushrank"
	"github.com/hupe1980/pushrank/csr"
	"github.com/hupe1980/pushrank/push"
	"github.com/hupe1980/pushrank/sparse"
	"github.com/hupe1980/pushrank/util"
)

func ring4(t *testing.T) *csr.Graph {
	t.Helper()

	g, err := csr.New(
		[]int64{0, 2, 4, 6, 8},
		[]int32{1, 3, 0, 2, 1, 3, 2, 0},
	)
	require.NoError(t, err)

	return g
}

func randomGraph(t *testing.T, n, edges int, seed int64) *csr.Graph {
	t.Helper()

	src, dst := util.NewRNG(seed).GenerateRandomGraph(n, edges)

	g, err := csr.FromEdges(n, src, dst)
	require.NoError(t, err)

	return g
}

func TestTopKMatrix_Shape(t *testing.T) {
	g := randomGraph(t, 100, 400, 1)
	seeds := []int32{0, 17, 42, 99}

	m, err := pushrank.TopKMatrix(context.Background(), g, seeds, pushrank.WithTopK(8))
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumRows)
	assert.Equal(t, 100, m.NumCols)
	for i := range seeds {
		assert.LessOrEqual(t, m.Row(i).NNZ(), 8)
	}
}

func TestTopKMatrix_SymNormalizationSymmetric(t *testing.T) {
	// On an undirected ring with every node as seed, sym normalization makes
	// the dense 4x4 matrix symmetric.
	g := ring4(t)

	m, err := pushrank.TopKMatrix(context.Background(), g, []int32{0, 1, 2, 3},
		pushrank.WithAlpha(0.5),
		pushrank.WithEpsilon(1e-6),
		pushrank.WithTopK(0),
		pushrank.WithNormalization(sparse.NormalizationSym),
	)
	require.NoError(t, err)

	d := m.Dense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, d[i][j], d[j][i], 1e-4, "entry (%d,%d)", i, j)
		}
	}
}

func TestTopKMatrix_RowNormalizationIdentity(t *testing.T) {
	g := ring4(t)
	eng := push.NewEngine(g)

	m, err := pushrank.TopKMatrix(context.Background(), g, []int32{0},
		pushrank.WithAlpha(0.5),
		pushrank.WithEpsilon(1e-4),
		pushrank.WithTopK(0),
	)
	require.NoError(t, err)

	// Default (row) normalization leaves push output untouched.
	v := eng.Push([]int32{0}, 0.5, 1e-4)
	for i, c := range v.Cols {
		assert.Equal(t, v.Vals[i], m.At(0, c))
	}
}

func TestTopKMatrix_SequentialParallelEquivalence(t *testing.T) {
	g := randomGraph(t, 300, 1500, 7)

	seeds := make([]int32, 100)
	for i := range seeds {
		seeds[i] = int32(i * 3)
	}

	run := func(parallelism int) *sparse.Matrix {
		m, err := pushrank.TopKMatrix(context.Background(), g, seeds,
			pushrank.WithTopK(16),
			pushrank.WithParallelism(parallelism),
		)
		require.NoError(t, err)
		return m
	}

	require.Equal(t, run(1), run(8))
}

func TestTopKMatrix_TruncationMatchesFullRun(t *testing.T) {
	g := randomGraph(t, 200, 1000, 3)
	seeds := []int32{0, 50, 150}

	full, err := pushrank.TopKMatrix(context.Background(), g, seeds, pushrank.WithTopK(0))
	require.NoError(t, err)

	const k = 8
	trunc, err := pushrank.TopKMatrix(context.Background(), g, seeds, pushrank.WithTopK(k))
	require.NoError(t, err)

	for i := range seeds {
		fullRow, truncRow := full.Row(i), trunc.Row(i)

		want := k
		if fullRow.NNZ() < k {
			want = fullRow.NNZ()
		}
		require.Equal(t, want, truncRow.NNZ())

		// Every kept entry exists in the full row with the same value, and
		// no omitted entry beats the weakest kept one.
		minKept := truncRow.Vals[0]
		for _, v := range truncRow.Vals {
			if v < minKept {
				minKept = v
			}
		}
		for j, c := range truncRow.Cols {
			require.Equal(t, full.At(i, c), truncRow.Vals[j])
		}
		for j, c := range fullRow.Cols {
			if trunc.At(i, c) == 0 {
				require.LessOrEqual(t, fullRow.Vals[j], minKept)
			}
		}
	}
}

func TestTopKMatrix_Validation(t *testing.T) {
	g := ring4(t)
	ctx := context.Background()

	var badAlpha *pushrank.ErrInvalidAlpha
	_, err := pushrank.TopKMatrix(ctx, g, []int32{0}, pushrank.WithAlpha(1))
	require.ErrorAs(t, err, &badAlpha)
	assert.Equal(t, float64(1), badAlpha.Alpha)

	_, err = pushrank.TopKMatrix(ctx, g, []int32{0}, pushrank.WithAlpha(-0.5))
	require.ErrorAs(t, err, &badAlpha)

	var badEps *pushrank.ErrInvalidEpsilon
	_, err = pushrank.TopKMatrix(ctx, g, []int32{0}, pushrank.WithEpsilon(0))
	require.ErrorAs(t, err, &badEps)

	var badNorm *sparse.ErrInvalidNormalization
	_, err = pushrank.TopKMatrix(ctx, g, []int32{0}, pushrank.WithNormalization("spectral"))
	require.ErrorAs(t, err, &badNorm)

	var badSeed *pushrank.ErrSeedOutOfRange
	_, err = pushrank.TopKMatrix(ctx, g, []int32{0, 4})
	require.ErrorAs(t, err, &badSeed)
	assert.Equal(t, int32(4), badSeed.Seed)
	assert.Equal(t, 1, badSeed.Position)
}

func TestTopKMatrix_ContextCancelled(t *testing.T) {
	g := randomGraph(t, 500, 2000, 11)

	seeds := make([]int32, 500)
	for i := range seeds {
		seeds[i] = int32(i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pushrank.TopKMatrix(ctx, g, seeds)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTopKClassMatrix(t *testing.T) {
	g := ring4(t)
	eng := push.NewEngine(g)

	// Classes: {0,1} -> 0, {2} -> 1, node 3 unlabeled.
	labels := []int32{0, 0, 1, -1}

	m, err := pushrank.TopKClassMatrix(context.Background(), g, labels,
		pushrank.WithAlpha(0.5),
		pushrank.WithEpsilon(1e-4),
		pushrank.WithTopK(0),
	)
	require.NoError(t, err)

	require.Equal(t, 2, m.NumRows)
	require.Equal(t, 4, m.NumCols)

	// Each class row equals one aggregated multi-seed push.
	v := eng.Push([]int32{0, 1}, 0.5, 1e-4)
	for i, c := range v.Cols {
		assert.Equal(t, v.Vals[i], m.At(0, c))
	}

	v = eng.Push([]int32{2}, 0.5, 1e-4)
	for i, c := range v.Cols {
		assert.Equal(t, v.Vals[i], m.At(1, c))
	}
}

func TestTopKClassMatrix_EmptyClass(t *testing.T) {
	g := ring4(t)

	// Class 1 has no members; its row is all-zero, not an error.
	labels := []int32{0, 0, 2, 2}

	m, err := pushrank.TopKClassMatrix(context.Background(), g, labels)
	require.NoError(t, err)

	require.Equal(t, 3, m.NumRows)
	assert.Equal(t, 0, m.Row(1).NNZ())
	assert.Greater(t, m.Row(0).NNZ(), 0)
	assert.Greater(t, m.Row(2).NNZ(), 0)
}

func TestTopKClassMatrix_RejectsDegreeNormalization(t *testing.T) {
	g := ring4(t)

	_, err := pushrank.TopKClassMatrix(context.Background(), g, []int32{0, 0, 1, 1},
		pushrank.WithNormalization(sparse.NormalizationSym),
	)
	require.ErrorIs(t, err, pushrank.ErrClassNormalization)
}
