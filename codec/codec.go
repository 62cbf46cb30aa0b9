// Package codec serializes sparse relevance matrices to a compact binary
// stream so graph-learning pipelines can cache PPR results between runs.
//
// Layout: a little-endian header (magic, version, flags) followed by a
// zstd-compressed payload of length-prefixed sections (shape, indptr,
// columns, values). Encoders and decoders are pooled.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/pushrank/sparse"
)

const (
	magic   uint32 = 0x50524d58 // "PRMX"
	version uint16 = 1

	flagZstd uint16 = 1 << 0
)

var (
	// ErrBadMagic is returned when the stream does not start with the
	// matrix magic number.
	ErrBadMagic = errors.New("not a pushrank matrix stream")

	// ErrUnsupportedVersion is returned for streams written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported matrix stream version")
)

var (
	encoderPool = sync.Pool{
		New: func() any {
			enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
			return enc
		},
	}
	decoderPool = sync.Pool{
		New: func() any {
			dec, _ := zstd.NewReader(nil)
			return dec
		},
	}
)

// Encode writes m to w.
func Encode(w io.Writer, m *sparse.Matrix) error {
	hdr := []any{magic, version, flagZstd}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write matrix header: %w", err)
		}
	}

	enc := encoderPool.Get().(*zstd.Encoder)
	enc.Reset(w)
	defer encoderPool.Put(enc)

	sections := []any{
		int64(m.NumRows),
		int64(m.NumCols),
		int64(m.NNZ()),
		m.Indptr,
		m.Cols,
		m.Vals,
	}
	for _, v := range sections {
		if err := binary.Write(enc, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write matrix payload: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush matrix payload: %w", err)
	}

	return nil
}

// Decode reads a matrix from r.
func Decode(r io.Reader) (*sparse.Matrix, error) {
	var (
		gotMagic   uint32
		gotVersion uint16
		flags      uint16
	)
	for _, v := range []any{&gotMagic, &gotVersion, &flags} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("read matrix header: %w", err)
		}
	}

	if gotMagic != magic {
		return nil, ErrBadMagic
	}
	if gotVersion != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, gotVersion)
	}

	payload := r
	if flags&flagZstd != 0 {
		dec := decoderPool.Get().(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			return nil, fmt.Errorf("reset decompressor: %w", err)
		}
		defer decoderPool.Put(dec)
		payload = dec
	}

	var numRows, numCols, nnz int64
	for _, v := range []any{&numRows, &numCols, &nnz} {
		if err := binary.Read(payload, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("read matrix shape: %w", err)
		}
	}

	if numRows < 0 || numCols < 0 || nnz < 0 {
		return nil, fmt.Errorf("corrupt matrix shape: %dx%d nnz=%d", numRows, numCols, nnz)
	}

	m := &sparse.Matrix{
		NumRows: int(numRows),
		NumCols: int(numCols),
		Indptr:  make([]int64, numRows+1),
		Cols:    make([]int32, nnz),
		Vals:    make([]float64, nnz),
	}
	for _, v := range []any{m.Indptr, m.Cols, m.Vals} {
		if err := binary.Read(payload, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("read matrix payload: %w", err)
		}
	}

	if m.Indptr[numRows] != nnz {
		return nil, fmt.Errorf("corrupt matrix: indptr tail %d, want nnz %d", m.Indptr[numRows], nnz)
	}

	return m, nil
}
