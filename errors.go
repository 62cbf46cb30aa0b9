package pushrank

import (
	"errors"
	"fmt"
)

var (
	// ErrClassNormalization is returned when a class-aggregated matrix is
	// requested with sym or col normalization. Those modes rescale by the
	// seed node's degree, which is undefined for a class of seeds.
	ErrClassNormalization = errors.New("class-aggregated matrices support row normalization only")
)

// ErrInvalidAlpha indicates a restart probability outside (0, 1).
type ErrInvalidAlpha struct {
	Alpha float64
}

func (e *ErrInvalidAlpha) Error() string {
	return fmt.Sprintf("alpha must be in (0, 1), got %g", e.Alpha)
}

// ErrInvalidEpsilon indicates a non-positive approximation tolerance.
type ErrInvalidEpsilon struct {
	Epsilon float64
}

func (e *ErrInvalidEpsilon) Error() string {
	return fmt.Sprintf("epsilon must be positive, got %g", e.Epsilon)
}

// ErrSeedOutOfRange indicates a seed id outside [0, NumNodes).
type ErrSeedOutOfRange struct {
	Position int
	Seed     int32
	NumNodes int
}

func (e *ErrSeedOutOfRange) Error() string {
	return fmt.Sprintf("seed %d at position %d outside [0, %d)", e.Seed, e.Position, e.NumNodes)
}
