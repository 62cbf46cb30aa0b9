package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Matrix is a CSR float matrix: NumRows x NumCols with entries flattened from
// per-row results, row index implicit from position.
type Matrix struct {
	NumRows int
	NumCols int
	Indptr  []int64
	Cols    []int32
	Vals    []float64
}

// FromRows flattens per-row results into one matrix of shape
// (len(rows), numCols). Row slices are copied, not retained.
func FromRows(rows []Row, numCols int) *Matrix {
	nnz := 0
	for _, r := range rows {
		nnz += r.NNZ()
	}

	m := &Matrix{
		NumRows: len(rows),
		NumCols: numCols,
		Indptr:  make([]int64, len(rows)+1),
		Cols:    make([]int32, 0, nnz),
		Vals:    make([]float64, 0, nnz),
	}

	for i, r := range rows {
		m.Cols = append(m.Cols, r.Cols...)
		m.Vals = append(m.Vals, r.Vals...)
		m.Indptr[i+1] = int64(len(m.Cols))
	}

	return m
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.Cols)
}

// Row returns row i as a zero-copy view.
func (m *Matrix) Row(i int) Row {
	lo, hi := m.Indptr[i], m.Indptr[i+1]
	return Row{Cols: m.Cols[lo:hi], Vals: m.Vals[lo:hi]}
}

// At returns the entry at (i, j), or 0 if not stored.
func (m *Matrix) At(i int, j int32) float64 {
	for lo, hi := m.Indptr[i], m.Indptr[i+1]; lo < hi; lo++ {
		if m.Cols[lo] == j {
			return m.Vals[lo]
		}
	}

	return 0
}

// RowSupport returns the set of columns stored in row i as a roaring bitmap.
func (m *Matrix) RowSupport(i int) *roaring.Bitmap {
	rb := roaring.New()
	for lo, hi := m.Indptr[i], m.Indptr[i+1]; lo < hi; lo++ {
		rb.Add(uint32(m.Cols[lo]))
	}

	return rb
}

// ColRange returns the sub-matrix restricted to columns [lo, hi), with column
// ids shifted down by lo. Used to slice the source-to-target block out of a
// combined bipartite matrix.
func (m *Matrix) ColRange(lo, hi int) *Matrix {
	out := &Matrix{
		NumRows: m.NumRows,
		NumCols: hi - lo,
		Indptr:  make([]int64, m.NumRows+1),
	}

	for i := 0; i < m.NumRows; i++ {
		for p, end := m.Indptr[i], m.Indptr[i+1]; p < end; p++ {
			if c := int(m.Cols[p]); c >= lo && c < hi {
				out.Cols = append(out.Cols, int32(c-lo))
				out.Vals = append(out.Vals, m.Vals[p])
			}
		}
		out.Indptr[i+1] = int64(len(out.Cols))
	}

	return out
}

// Dense expands the matrix to a row-major [][]float64. Intended for tests and
// small matrices only.
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, m.NumRows)
	for i := range out {
		out[i] = make([]float64, m.NumCols)
		for p, end := m.Indptr[i], m.Indptr[i+1]; p < end; p++ {
			out[i][m.Cols[p]] = m.Vals[p]
		}
	}

	return out
}

func (m *Matrix) String() string {
	return fmt.Sprintf("sparse.Matrix(%dx%d, nnz=%d)", m.NumRows, m.NumCols, m.NNZ())
}
