package sparse

import (
	"fmt"
	"math"
)

// Normalization selects how matrix entries are rescaled by node degrees.
type Normalization string

const (
	// NormalizationSym rescales entry (i,j) by
	// sqrt(degree(seed_i)) / sqrt(degree(j)). Assumes an undirected graph.
	NormalizationSym Normalization = "sym"
	// NormalizationCol rescales entry (i,j) by degree(seed_i) / degree(j).
	// Assumes an undirected graph.
	NormalizationCol Normalization = "col"
	// NormalizationRow leaves values unchanged.
	NormalizationRow Normalization = "row"
)

// ErrInvalidNormalization indicates an unrecognized normalization mode.
type ErrInvalidNormalization struct {
	Mode string
}

func (e *ErrInvalidNormalization) Error() string {
	return fmt.Sprintf("unknown normalization mode: %q", e.Mode)
}

// degreeFloor guards the divisions against isolated (degree-0) nodes.
const degreeFloor = 1e-12

// Normalize rescales entries in place. deg is the combined-space degree
// vector (length NumCols) and seeds[i] is the node the i-th row was pushed
// from. The mode is validated before any entry is mutated; an unknown mode
// returns *ErrInvalidNormalization and leaves the matrix untouched.
func (m *Matrix) Normalize(mode Normalization, deg []float64, seeds []int32) error {
	switch mode {
	case NormalizationSym, NormalizationCol, NormalizationRow:
	default:
		return &ErrInvalidNormalization{Mode: string(mode)}
	}

	if mode == NormalizationRow {
		return nil
	}

	if len(seeds) != m.NumRows {
		return fmt.Errorf("seed count %d, want one per row (%d)", len(seeds), m.NumRows)
	}
	if len(deg) != m.NumCols {
		return fmt.Errorf("degree vector length %d, want %d", len(deg), m.NumCols)
	}

	for i := 0; i < m.NumRows; i++ {
		srcDeg := math.Max(deg[seeds[i]], degreeFloor)

		for p, end := m.Indptr[i], m.Indptr[i+1]; p < end; p++ {
			dstDeg := math.Max(deg[m.Cols[p]], degreeFloor)

			switch mode {
			case NormalizationSym:
				m.Vals[p] *= math.Sqrt(srcDeg) / math.Sqrt(dstDeg)
			case NormalizationCol:
				m.Vals[p] *= srcDeg / dstDeg
			}
		}
	}

	return nil
}
